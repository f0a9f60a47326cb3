package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry *prometheus.Registry

	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Intents         *prometheus.CounterVec
	Plans           *prometheus.CounterVec
	SummaryFallback prometheus.Counter
	CatalogPOIs     prometheus.Gauge
}

// NewMetrics registers every collector on a fresh registry so tests and
// multiple app instances never collide on the global one.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestCount: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voyager_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Intents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_intents_total",
				Help: "Classified intents",
			},
			[]string{"intent"},
		),
		Plans: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_plans_total",
				Help: "Plans built, by status",
			},
			[]string{"status"},
		),
		SummaryFallback: f.NewCounter(
			prometheus.CounterOpts{
				Name: "voyager_summary_fallbacks_total",
				Help: "Summaries answered by the stub after the configured backend failed",
			},
		),
		CatalogPOIs: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "voyager_catalog_pois",
				Help: "POIs in the active catalog snapshot",
			},
		),
	}
}
