// Package planner turns extracted trip entities and a POI catalog into a
// costed, day-by-day itinerary. Planning is a pure function of its inputs
// and an injectable clock; a Plan is built in one pass and never mutated.
package planner

import (
	"fmt"
	"strings"
	"time"

	"voyager/internal/catalog"
	"voyager/internal/nlu"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusNeedInfo Status = "need_info"
)

const (
	missingDestination = "destination"
	missingDuration    = "dates or duration"
)

type Summary struct {
	Destination   string   `json:"destination"`
	Origin        string   `json:"origin,omitempty"`
	StartDate     nlu.Date `json:"start_date"`
	EndDate       nlu.Date `json:"end_date"`
	NDays         int      `json:"n_days"`
	StayTier      StayTier `json:"stay_tier"`
	EstCostINR    int      `json:"est_cost_inr"`
	TravelCostINR int      `json:"travel_cost_inr"`
	StayCostINR   int      `json:"stay_cost_inr"`
	MiscCostINR   int      `json:"misc_cost_inr"`
	Notes         string   `json:"notes"`
}

type Day struct {
	Date  nlu.Date        `json:"date"`
	Items []ScheduleBlock `json:"items"`
}

type Plan struct {
	Status       Status         `json:"status"`
	Summary      *Summary       `json:"summary,omitempty"`
	Days         []Day          `json:"days,omitempty"`
	Assumptions  []string       `json:"assumptions,omitempty"`
	Ask          string         `json:"ask,omitempty"`
	EntitiesSeen *nlu.EntitySet `json:"entities_seen,omitempty"`
}

func (p Plan) Ready() bool {
	return p.Status == StatusOK
}

type Option func(*Planner)

// WithClock sets the source of "today" used when only a duration is known.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

type Planner struct {
	catalog  catalog.Lookup
	tables   Tables
	now      func() time.Time
	dayStart time.Time
}

func New(src catalog.Lookup, tables Tables, opts ...Option) (*Planner, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("planner tables: %w", err)
	}
	start, _ := parseClock(tables.DayStart)
	p := &Planner{
		catalog:  src,
		tables:   tables.clone(),
		now:      time.Now,
		dayStart: start,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Planner) Tables() Tables {
	return p.tables.clone()
}

// Plan returns need_info when the destination or a resolvable duration is
// missing, otherwise a complete plan with len(Days) == Summary.NDays.
func (p *Planner) Plan(ents nlu.EntitySet) Plan {
	if missing := missingFields(ents); len(missing) > 0 {
		seen := ents
		return Plan{
			Status:       StatusNeedInfo,
			Ask:          fmt.Sprintf("Please provide %s to plan your trip.", strings.Join(missing, ", ")),
			EntitiesSeen: &seen,
		}
	}

	start, end, nDays := p.resolveDuration(ents)
	if nDays > p.tables.MaxDays {
		seen := ents
		return Plan{
			Status:       StatusNeedInfo,
			Ask:          fmt.Sprintf("Please provide a trip of at most %d days to plan your trip.", p.tables.MaxDays),
			EntitiesSeen: &seen,
		}
	}
	cost := p.tables.Estimate(ents, nDays)

	ranked := SelectPOIs(p.catalog, ents.Destination, ents.Interests)
	buckets := PackDays(ranked, nDays, p.tables.DayCapacity)

	travel := p.tables.TravelMinutes(ents.Destination)
	visit := time.Duration(p.tables.VisitMinutes) * time.Minute
	days := make([]Day, len(buckets))
	for i, bucket := range buckets {
		days[i] = Day{
			Date:  start.AddDays(i),
			Items: ScheduleDay(bucket, travel, p.dayStart, visit),
		}
	}

	return Plan{
		Status: StatusOK,
		Summary: &Summary{
			Destination:   ents.Destination,
			Origin:        ents.Origin,
			StartDate:     start,
			EndDate:       end,
			NDays:         nDays,
			StayTier:      cost.Tier,
			EstCostINR:    cost.Total,
			TravelCostINR: cost.Travel,
			StayCostINR:   cost.Stay,
			MiscCostINR:   cost.Misc,
			Notes:         budgetNote(cost),
		},
		Days:        days,
		Assumptions: p.assumptions(),
	}
}

func missingFields(ents nlu.EntitySet) []string {
	var missing []string
	if ents.Destination == "" {
		missing = append(missing, missingDestination)
	}
	if ents.NDays < 1 && (ents.StartDate == nil || ents.EndDate == nil) {
		missing = append(missing, missingDuration)
	}
	return missing
}

// resolveDuration fills whichever of start, end and day count is missing.
// A given day count is kept even when both dates are also present. A range
// that ends before it starts is one day long and ends on its start date.
func (p *Planner) resolveDuration(ents nlu.EntitySet) (start, end nlu.Date, nDays int) {
	nDays = ents.NDays
	switch {
	case nDays < 1:
		start, end = *ents.StartDate, *ents.EndDate
		nDays = max(start.DaysUntil(end)+1, 1)
		if end.Before(start.Time) {
			end = start.AddDays(nDays - 1)
		}
	case ents.StartDate != nil && ents.EndDate == nil:
		start = *ents.StartDate
		end = start.AddDays(nDays - 1)
	case ents.StartDate == nil:
		start = nlu.DateOf(p.now())
		end = start.AddDays(nDays - 1)
	default:
		start, end = *ents.StartDate, *ents.EndDate
	}
	return start, end, nDays
}

func budgetNote(c CostBreakdown) string {
	if c.HasBudget {
		return fmt.Sprintf("Estimated total ~₹%d vs your budget ₹%d.", c.Total, truncate(c.Budget))
	}
	return fmt.Sprintf("Estimated total ~₹%d (no budget provided).", c.Total)
}

func (p *Planner) assumptions() []string {
	return append([]string(nil), p.tables.Assumptions...)
}
