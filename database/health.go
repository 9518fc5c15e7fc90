package database

import (
	"context"
	"time"

	"github.com/kbukum/storefront/observability"
)

// CheckHealth pings the database with a short deadline.
func (d *DB) CheckHealth(ctx context.Context) observability.Health {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	h := observability.Health{Name: "database", Status: observability.HealthStatusUp}
	start := time.Now()
	if err := d.PingContext(ctx); err != nil {
		h.Status = observability.HealthStatusDown
		h.Message = err.Error()
		return h
	}
	h.Details = map[string]string{"latency": time.Since(start).String()}
	return h
}
