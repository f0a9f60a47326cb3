package planner

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type StayTier string

const (
	TierBudget  StayTier = "budget"
	TierMid     StayTier = "mid"
	TierPremium StayTier = "premium"
)

// Route is an unordered pair of cities; lookups try both directions.
type Route struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	Cost int    `toml:"cost"`
}

// Tables holds every lookup the cost model and scheduler read. Treat a
// Tables value as immutable once handed to New.
type Tables struct {
	ReferenceCurrency string             `toml:"reference_currency"`
	FX                map[string]float64 `toml:"fx"`

	StayPerNight map[string]int `toml:"stay_per_night"`

	DefaultBaseCost int            `toml:"default_base_cost"`
	CityBaseCost    map[string]int `toml:"city_base_cost"`

	DefaultTravelMinutes int            `toml:"default_travel_minutes"`
	CityTravelMinutes    map[string]int `toml:"city_travel_minutes"`

	Routes        []Route `toml:"routes"`
	FallbackRoute int     `toml:"fallback_route"`

	// ReferenceTotal picks the stay tier when the traveller gave no budget.
	ReferenceTotal float64 `toml:"reference_total"`
	StayShare      float64 `toml:"stay_share"`
	BudgetCeiling  float64 `toml:"budget_ceiling"`
	MidCeiling     float64 `toml:"mid_ceiling"`

	DayCapacity  int    `toml:"day_capacity"`
	VisitMinutes int    `toml:"visit_minutes"`
	DayStart     string `toml:"day_start"`

	// MaxDays is the longest trip the planner will lay out.
	MaxDays int `toml:"max_days"`

	Assumptions []string `toml:"assumptions"`
}

func DefaultTables() Tables {
	return Tables{
		ReferenceCurrency: "INR",
		FX:                map[string]float64{"INR": 1.0, "USD": 83.0, "EUR": 90.0},
		StayPerNight: map[string]int{
			string(TierBudget):  1500,
			string(TierMid):     3500,
			string(TierPremium): 7500,
		},
		DefaultBaseCost: 2500,
		CityBaseCost: map[string]int{
			"Goa":       3000,
			"Jaipur":    2200,
			"Manali":    2600,
			"Singapore": 9000,
		},
		DefaultTravelMinutes: 25,
		CityTravelMinutes: map[string]int{
			"Goa":       35,
			"Jaipur":    20,
			"Manali":    30,
			"Singapore": 15,
		},
		Routes: []Route{
			{From: "Mumbai", To: "Goa", Cost: 5000},
			{From: "Mumbai", To: "Jaipur", Cost: 4500},
			// overland by bus or train
			{From: "Mumbai", To: "Manali", Cost: 0},
			{From: "Mumbai", To: "Singapore", Cost: 22000},
		},
		FallbackRoute:  8000,
		ReferenceTotal: 40000,
		StayShare:      0.4,
		BudgetCeiling:  2000,
		MidCeiling:     5000,
		DayCapacity:    4,
		VisitMinutes:   90,
		DayStart:       "09:00",
		MaxDays:        30,
		Assumptions: []string{
			"In-city travel ~25–35 min between POIs",
			"90 minutes per POI",
			"Costs are rough heuristics",
		},
	}
}

// LoadTables reads a TOML override file and merges it over DefaultTables.
// Scalars replace the default when set; map entries are added or replaced
// key by key; a non-empty routes list replaces the default routes.
func LoadTables(path string) (Tables, error) {
	base := DefaultTables()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read planner tables %s: %w", path, err)
	}
	var override Tables
	if err := toml.Unmarshal(data, &override); err != nil {
		return base, fmt.Errorf("decode planner tables %s: %w", path, err)
	}
	merged := base.merge(override)
	if err := merged.Validate(); err != nil {
		return base, fmt.Errorf("planner tables %s: %w", path, err)
	}
	return merged, nil
}

func (t Tables) merge(o Tables) Tables {
	out := t.clone()
	if o.ReferenceCurrency != "" {
		out.ReferenceCurrency = o.ReferenceCurrency
	}
	for k, v := range o.FX {
		out.FX[k] = v
	}
	for k, v := range o.StayPerNight {
		out.StayPerNight[k] = v
	}
	for k, v := range o.CityBaseCost {
		out.CityBaseCost[k] = v
	}
	for k, v := range o.CityTravelMinutes {
		out.CityTravelMinutes[k] = v
	}
	if len(o.Routes) > 0 {
		out.Routes = append([]Route(nil), o.Routes...)
	}
	if len(o.Assumptions) > 0 {
		out.Assumptions = append([]string(nil), o.Assumptions...)
	}
	setInt(&out.DefaultBaseCost, o.DefaultBaseCost)
	setInt(&out.DefaultTravelMinutes, o.DefaultTravelMinutes)
	setInt(&out.FallbackRoute, o.FallbackRoute)
	setInt(&out.DayCapacity, o.DayCapacity)
	setInt(&out.VisitMinutes, o.VisitMinutes)
	setInt(&out.MaxDays, o.MaxDays)
	setFloat(&out.ReferenceTotal, o.ReferenceTotal)
	setFloat(&out.StayShare, o.StayShare)
	setFloat(&out.BudgetCeiling, o.BudgetCeiling)
	setFloat(&out.MidCeiling, o.MidCeiling)
	if o.DayStart != "" {
		out.DayStart = o.DayStart
	}
	return out
}

func (t Tables) clone() Tables {
	out := t
	out.FX = copyMap(t.FX)
	out.StayPerNight = copyMap(t.StayPerNight)
	out.CityBaseCost = copyMap(t.CityBaseCost)
	out.CityTravelMinutes = copyMap(t.CityTravelMinutes)
	out.Routes = append([]Route(nil), t.Routes...)
	out.Assumptions = append([]string(nil), t.Assumptions...)
	return out
}

// Validate rejects tables the planner cannot run with.
func (t Tables) Validate() error {
	for _, tier := range []StayTier{TierBudget, TierMid, TierPremium} {
		if _, ok := t.StayPerNight[string(tier)]; !ok {
			return fmt.Errorf("stay_per_night is missing tier %q", tier)
		}
	}
	if t.DayCapacity < 1 {
		return fmt.Errorf("day_capacity must be positive, got %d", t.DayCapacity)
	}
	if t.VisitMinutes < 1 {
		return fmt.Errorf("visit_minutes must be positive, got %d", t.VisitMinutes)
	}
	if t.MaxDays < 1 {
		return fmt.Errorf("max_days must be positive, got %d", t.MaxDays)
	}
	if _, err := parseClock(t.DayStart); err != nil {
		return err
	}
	return nil
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
