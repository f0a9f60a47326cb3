package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.Intents.WithLabelValues("plan_trip").Inc()
	a.Intents.WithLabelValues("plan_trip").Inc()
	b.Plans.WithLabelValues("ok").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(a.Intents.WithLabelValues("plan_trip")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Intents.WithLabelValues("plan_trip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.Plans.WithLabelValues("ok")))
}
