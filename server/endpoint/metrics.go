package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/observability"
)

// Metrics serves the Prometheus registry.
func Metrics(prom *observability.Prometheus) gin.HandlerFunc {
	return gin.WrapH(prom.Handler())
}
