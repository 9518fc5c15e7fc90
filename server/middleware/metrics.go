package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/observability"
)

// Metrics records every routed request in the Prometheus registry and the
// OpenTelemetry instruments. Either may be nil. Routes are labelled by their
// template (/api/products/:id) to keep cardinality bounded.
func Metrics(prom *observability.Prometheus, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		var done func(method, route string, status int)
		if prom != nil {
			done = prom.Begin()
		}
		metrics.RequestStarted(c.Request.Context())

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		if done != nil {
			done(c.Request.Method, route, status)
		}
		metrics.RecordRequest(c.Request.Context(), c.Request.Method, route, status, time.Since(start))
	}
}
