package planner

import (
	"math"
	"strings"

	"voyager/internal/nlu"
	"voyager/pkg/utils"
)

// CostBreakdown is expressed in the reference currency.
type CostBreakdown struct {
	Tier      StayTier
	Nights    int
	Travel    int
	Stay      int
	Misc      int
	Total     int
	Budget    float64
	HasBudget bool
}

// ToReference converts a budget into the reference currency. Unknown
// currencies pass through at rate 1.
func (t Tables) ToReference(m *nlu.Money) (float64, bool) {
	if m == nil {
		return 0, false
	}
	cur := strings.ToUpper(m.Currency)
	if cur == "" {
		cur = t.ReferenceCurrency
	}
	rate, ok := t.FX[cur]
	if !ok {
		rate = 1.0
	}
	return m.Amount * rate, true
}

func (t Tables) PickStayTier(total float64, nights int) StayTier {
	perNight := total * t.StayShare / float64(max(nights, 1))
	switch {
	case perNight < t.BudgetCeiling:
		return TierBudget
	case perNight < t.MidCeiling:
		return TierMid
	default:
		return TierPremium
	}
}

func (t Tables) StayCost(tier StayTier, nights int) int {
	return t.StayPerNight[string(tier)] * max(nights, 1)
}

// TransportCost looks the route up in both directions and falls back to a
// flat estimate. A missing endpoint costs nothing.
func (t Tables) TransportCost(origin, dest string) int {
	if origin == "" || dest == "" {
		return 0
	}
	o, d := utils.TitleCase(origin), utils.TitleCase(dest)
	for _, r := range t.Routes {
		from, to := utils.TitleCase(r.From), utils.TitleCase(r.To)
		if (from == o && to == d) || (from == d && to == o) {
			return r.Cost
		}
	}
	return t.FallbackRoute
}

func (t Tables) MiscCost(dest string, days int) int {
	base, ok := t.CityBaseCost[utils.TitleCase(dest)]
	if !ok {
		base = t.DefaultBaseCost
	}
	return base * days
}

func (t Tables) TravelMinutes(city string) int {
	if m, ok := t.CityTravelMinutes[utils.TitleCase(city)]; ok {
		return m
	}
	return t.DefaultTravelMinutes
}

// Estimate prices a trip of nDays. Without a budget the reference total
// only selects the stay tier; it never appears in the estimate.
func (t Tables) Estimate(ents nlu.EntitySet, nDays int) CostBreakdown {
	nights := max(nDays-1, 1)
	budget, hasBudget := t.ToReference(ents.Budget)

	tierBase := t.ReferenceTotal
	if hasBudget && budget > 0 {
		tierBase = budget
	}
	tier := t.PickStayTier(tierBase, nights)

	out := CostBreakdown{
		Tier:      tier,
		Nights:    nights,
		Travel:    t.TransportCost(ents.Origin, ents.Destination),
		Stay:      t.StayCost(tier, nights),
		Misc:      t.MiscCost(ents.Destination, nDays),
		Budget:    budget,
		HasBudget: hasBudget && budget > 0,
	}
	out.Total = out.Travel + out.Stay + out.Misc
	return out
}

func truncate(v float64) int {
	return int(math.Trunc(v))
}
