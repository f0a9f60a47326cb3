package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voyager/internal/telemetry"
)

// Metrics records request counts and latency by route template, so
// /pois/goa and /pois/jaipur share one series.
func Metrics(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
