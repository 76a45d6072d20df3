package postgres

import (
	"context"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for PostgreSQL. It probes the
// deposits table rather than the connection alone, so a database without
// the schema reports unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	_, err := h.pool.Exec(ctx, "SELECT 1 FROM deposits LIMIT 1")
	return err
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
