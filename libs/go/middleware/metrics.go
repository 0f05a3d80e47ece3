package middleware

import (
	"strconv"
	"time"

	"github.com/amped-finance/amped-api/libs/go/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency. Paths are labelled
// by route template so account addresses never become label values.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
