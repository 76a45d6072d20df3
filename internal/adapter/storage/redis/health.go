package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthTimeout = time.Second

// HealthCheck reports Redis reachability on /health. Losing Redis degrades
// the gateway (row locks and the ledger table still hold) but is surfaced.
type HealthCheck struct {
	client goredis.UniversalClient
}

func NewHealthCheck(client goredis.UniversalClient) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	return h.client.Ping(ctx).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}
