package redis

import (
	"context"

	"github.com/kbukum/storefront/observability"
)

// CheckHealth reports redis as down when it does not answer a ping.
func (c *Client) CheckHealth(ctx context.Context) observability.Health {
	if err := c.Ping(ctx); err != nil {
		return observability.Health{Name: "redis", Status: observability.HealthStatusDown, Message: err.Error()}
	}
	return observability.Health{Name: "redis", Status: observability.HealthStatusUp}
}
