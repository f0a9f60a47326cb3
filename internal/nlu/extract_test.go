package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Plan a trip to Goa", IntentPlanTrip},
		{"Make me an itinerary", IntentPlanTrip},
		{"weekend getaway", IntentPlanTrip},
		{"Which countries are visa free?", IntentAskVisaFree},
		{"places I can go without visa", IntentAskVisaFree},
		{"What is the cheapest option", IntentBudgetFocus},
		{"somewhere under 5000", IntentBudgetFocus},
		// declared order breaks ties: plan_trip is checked first
		{"plan a visa-free trip on a budget", IntentPlanTrip},
		{"visa-free places on a budget", IntentAskVisaFree},
		{"hello", IntentPlanTrip},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.text))
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Money
	}{
		{"thousands suffix", "around 20k", &Money{20000, "INR"}},
		{"lakh", "about 1.2 lakh", &Money{120000, "INR"}},
		{"rupee symbol", "under ₹20000", &Money{20000, "INR"}},
		{"separators stripped", "under ₹20,000", &Money{20000, "INR"}},
		{"rs with suffix", "rs 30k max", &Money{30000, "INR"}},
		{"dollar symbol", "$500 total", &Money{500, "USD"}},
		{"trailing code", "under 800 USD", &Money{800, "USD"}},
		{"euro", "€1,200", &Money{1200, "EUR"}},
		{"crore", "2 crore", &Money{20000000, "INR"}},
		{"million", "budget 1.5 m", &Money{1500000, "INR"}},
		{"duration skipped", "3-day trip under 20000", &Money{20000, "INR"}},
		{"marker preferred", "2 people, under $900", &Money{900, "USD"}},
		{"only dates", "12 to 15 Oct", nil},
		{"modal may after an amount", "trip to Goa under 5000 may be ok for 2 days", &Money{5000, "INR"}},
		{"day of may skipped", "leaving 5 May, spend 9000", &Money{9000, "INR"}},
		{"duration range skipped", "3 to 5 days under 9000", &Money{9000, "INR"}},
		{"large number before a month", "20000 oct trip", &Money{20000, "INR"}},
		{"no numbers", "a relaxing trip", nil},
		{"words are not markers", "5 hours 30", &Money{5, "INR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBudget(tt.text))
		})
	}
}

func TestExtractDates(t *testing.T) {
	t.Run("range with to", func(t *testing.T) {
		got := ExtractDates("12 to 15 Oct", 2026)
		require.NotNil(t, got.StartDate)
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2026-10-12", got.StartDate.String())
		assert.Equal(t, "2026-10-15", got.EndDate.String())
	})

	t.Run("range with hyphen and full month", func(t *testing.T) {
		got := ExtractDates("3-7 September", 2026)
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2026-09-03", got.StartDate.String())
		assert.Equal(t, "2026-09-07", got.EndDate.String())
	})

	t.Run("single day", func(t *testing.T) {
		got := ExtractDates("leaving 5 Dec", 2026)
		require.NotNil(t, got.StartDate)
		assert.Equal(t, "2026-12-05", got.StartDate.String())
		assert.Nil(t, got.EndDate)
	})

	t.Run("invalid calendar day is dropped", func(t *testing.T) {
		got := ExtractDates("31 Feb", 2026)
		assert.Nil(t, got.StartDate)
		assert.Nil(t, got.EndDate)
	})

	t.Run("month without day", func(t *testing.T) {
		got := ExtractDates("sometime in October", 2026)
		assert.Equal(t, DateEntities{}, got)
	})

	durations := []struct {
		text string
		want int
	}{
		{"a 3-day trip", 3},
		{"5 nights in Bali", 5},
		{"4 days", 4},
		{"this weekend", 2},
		{"next week", 2},
		{"0 days", 0},
		{"no duration", 0},
	}
	for _, d := range durations {
		t.Run(d.text, func(t *testing.T) {
			assert.Equal(t, d.want, ExtractDates(d.text, 2026).NDays)
		})
	}
}

func TestExtractPlaces(t *testing.T) {
	tests := []struct {
		text   string
		dest   string
		origin string
	}{
		{scenarioA, "Goa", "Mumbai"},
		{"Cheap 5 day manali trip from Mumbai in Jan", "Manali", "Mumbai"},
		{"a trip to Hampi", "Hampi", ""},
		{"two days in Mount Abu please", "Mount Abu", ""},
		{"a trip to Rishikesh and then goa", "Goa", ""},
		{"fly to paris then new york", "New York", ""},
		{"somewhere warm", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ExtractPlaces(tt.text)
			assert.Equal(t, tt.dest, got.Destination)
			assert.Equal(t, tt.origin, got.Origin)
		})
	}
}

func TestExtractInterests(t *testing.T) {
	assert.Equal(t, []string{"beach", "nightlife"}, ExtractInterests("beaches and NIGHTLIFE"))
	assert.Equal(t, []string{"hiking", "history", "nightlife"}, ExtractInterests("old forts, a trek and a club"))
	assert.Equal(t, []string{"food"}, ExtractInterests("food food food"))
	assert.Nil(t, ExtractInterests("just relaxing"))
}

func TestVocabularyIsACopy(t *testing.T) {
	v := Vocabulary()
	v[0] = "changed"
	assert.Equal(t, "beach", Vocabulary()[0])
}

func TestDetectVisaFree(t *testing.T) {
	assert.True(t, DetectVisaFree("Visa free countries"))
	assert.True(t, DetectVisaFree("no visa please"))
	assert.False(t, DetectVisaFree("Plan a trip to Goa"))
}
