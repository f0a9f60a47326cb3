package nlu

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
}

const scenarioA = "Plan a 3-day trip to Goa from Mumbai under ₹20000 in October with beaches and nightlife."

func TestParse_GoaTrip(t *testing.T) {
	out := NewParser(fixedClock).Parse(scenarioA)

	assert.Equal(t, IntentPlanTrip, out.Intent)
	ents := out.Entities
	assert.Equal(t, "Goa", ents.Destination)
	assert.Equal(t, "Mumbai", ents.Origin)
	require.NotNil(t, ents.Budget)
	assert.Equal(t, Money{Amount: 20000, Currency: "INR"}, *ents.Budget)
	assert.Equal(t, 3, ents.NDays)
	assert.Equal(t, []string{"beach", "nightlife"}, ents.Interests)
	assert.Nil(t, ents.StartDate)
	assert.False(t, ents.VisaFreeHint)
}

func TestParse_VisaFreeQuestion(t *testing.T) {
	out := NewParser(fixedClock).Parse("Suggest visa-free countries for Indians in June under 800 USD.")

	assert.Equal(t, IntentAskVisaFree, out.Intent)
	assert.True(t, out.Entities.VisaFreeHint)
	require.NotNil(t, out.Entities.Budget)
	assert.Equal(t, "USD", out.Entities.Budget.Currency)
	assert.Equal(t, 800.0, out.Entities.Budget.Amount)
}

func TestParse_WeekendTrip(t *testing.T) {
	out := NewParser(fixedClock).Parse("I want a weekend trip to Jaipur for heritage and shopping from Delhi.")

	assert.Equal(t, IntentPlanTrip, out.Intent)
	assert.Equal(t, "Jaipur", out.Entities.Destination)
	assert.Equal(t, "Delhi", out.Entities.Origin)
	assert.Equal(t, 2, out.Entities.NDays)
	assert.Equal(t, []string{"history", "shopping"}, out.Entities.Interests)
	assert.Nil(t, out.Entities.Budget)
}

func TestParse_DateRange(t *testing.T) {
	out := NewParser(fixedClock).Parse("Goa from 12 to 15 Oct please")

	require.NotNil(t, out.Entities.StartDate)
	require.NotNil(t, out.Entities.EndDate)
	assert.Equal(t, "2026-10-12", out.Entities.StartDate.String())
	assert.Equal(t, "2026-10-15", out.Entities.EndDate.String())
	assert.Nil(t, out.Entities.Budget, "day numbers are not a budget")
}

func TestParse_Deterministic(t *testing.T) {
	p := NewParser(fixedClock)
	inputs := []string{
		scenarioA,
		"Cheap 5 day manali trip from Mumbai in Jan under 30000",
		"",
		"hello there",
	}
	for _, in := range inputs {
		assert.Equal(t, p.Parse(in), p.Parse(in), in)
	}
}

func TestParse_EmptyText(t *testing.T) {
	out := NewParser(fixedClock).Parse("")

	assert.Equal(t, IntentPlanTrip, out.Intent)
	assert.Equal(t, EntitySet{}, out.Entities)
}

func TestEntitySet_JSONOmitsAbsentFields(t *testing.T) {
	out := NewParser(fixedClock).Parse("I want a trip to Goa")

	data, err := json.Marshal(out.Entities)
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination":"Goa"}`, string(data))
}
