package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyager/internal/nlu"
)

func TestToReference(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name  string
		money *nlu.Money
		want  float64
		ok    bool
	}{
		{"nil budget", nil, 0, false},
		{"rupees", &nlu.Money{Amount: 20000, Currency: "INR"}, 20000, true},
		{"dollars", &nlu.Money{Amount: 800, Currency: "USD"}, 66400, true},
		{"euros lower case", &nlu.Money{Amount: 100, Currency: "eur"}, 9000, true},
		{"unknown passes through", &nlu.Money{Amount: 50, Currency: "JPY"}, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.ToReference(tt.money)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPickStayTier(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, TierBudget, tables.PickStayTier(9000, 2))
	assert.Equal(t, TierMid, tables.PickStayTier(10000, 2))
	assert.Equal(t, TierMid, tables.PickStayTier(20000, 2))
	assert.Equal(t, TierPremium, tables.PickStayTier(25000, 2))
	// zero nights is treated as one
	assert.Equal(t, TierPremium, tables.PickStayTier(40000, 0))
}

func TestTransportCost(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 5000, tables.TransportCost("Mumbai", "Goa"))
	assert.Equal(t, 5000, tables.TransportCost("goa", "MUMBAI"))
	assert.Equal(t, 0, tables.TransportCost("Mumbai", "Manali"))
	assert.Equal(t, 8000, tables.TransportCost("Delhi", "Goa"))
	assert.Equal(t, 0, tables.TransportCost("", "Goa"))
	assert.Equal(t, 0, tables.TransportCost("Mumbai", ""))
}

func TestMiscCostAndTravelMinutes(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 9000, tables.MiscCost("Goa", 3))
	assert.Equal(t, 5000, tables.MiscCost("Hampi", 2))
	assert.Equal(t, 35, tables.TravelMinutes("goa"))
	assert.Equal(t, 25, tables.TravelMinutes("Hampi"))
}

func TestEstimate(t *testing.T) {
	tables := DefaultTables()

	t.Run("with budget", func(t *testing.T) {
		got := tables.Estimate(nlu.EntitySet{
			Destination: "Goa",
			Origin:      "Mumbai",
			Budget:      &nlu.Money{Amount: 20000, Currency: "INR"},
		}, 3)
		assert.Equal(t, CostBreakdown{
			Tier: TierMid, Nights: 2, Travel: 5000, Stay: 7000, Misc: 9000, Total: 21000,
			Budget: 20000, HasBudget: true,
		}, got)
	})

	t.Run("reference total picks the tier only", func(t *testing.T) {
		got := tables.Estimate(nlu.EntitySet{Destination: "Jaipur"}, 2)
		// 40000 * 0.4 / 1 night is premium
		assert.Equal(t, TierPremium, got.Tier)
		assert.Equal(t, 1, got.Nights)
		assert.Equal(t, 7500+0+4400, got.Total)
		assert.False(t, got.HasBudget)
	})
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		got, err := LoadTables("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), got)
	})

	t.Run("override merges over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
fallback_route = 9000
day_capacity = 3
max_days = 14
assumptions = ["Prices from 2026 tariffs"]

[fx]
GBP = 105.0

[city_base_cost]
Hampi = 1800

[[routes]]
from = "Delhi"
to = "Jaipur"
cost = 1200
`), 0o600))

		got, err := LoadTables(path)
		require.NoError(t, err)
		assert.Equal(t, 9000, got.FallbackRoute)
		assert.Equal(t, 3, got.DayCapacity)
		assert.Equal(t, 105.0, got.FX["GBP"])
		assert.Equal(t, 83.0, got.FX["USD"])
		assert.Equal(t, 1800, got.CityBaseCost["Hampi"])
		assert.Equal(t, 3000, got.CityBaseCost["Goa"])
		assert.Equal(t, []Route{{From: "Delhi", To: "Jaipur", Cost: 1200}}, got.Routes)
		assert.Equal(t, 90, got.VisitMinutes)
		assert.Equal(t, 14, got.MaxDays)
		assert.Equal(t, []string{"Prices from 2026 tariffs"}, got.Assumptions)

		// defaults are not shared with the merged value
		assert.NotContains(t, DefaultTables().FX, "GBP")
	})

	t.Run("invalid day start is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.toml")
		require.NoError(t, os.WriteFile(path, []byte(`day_start = "nine"`), 0o600))

		_, err := LoadTables(path)
		assert.Error(t, err)
	})

	t.Run("negative max days is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.toml")
		require.NoError(t, os.WriteFile(path, []byte(`max_days = -1`), 0o600))

		_, err := LoadTables(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
