package funnelapi

import (
	"context"
	"fmt"
	"net/http"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return "funnel-api"
}

// HealthCheck reports whether the funnel API is reachable and ready. A
// tripped circuit breaker fails fast without a network call; otherwise the
// server's readiness endpoint decides.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.req.BreakerHealth(ctx); err != nil {
		return err
	}

	if err := c.req.Do(ctx, http.MethodGet, "/health/ready", http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("funnel-api: not ready: %w", err)
	}
	return nil
}
