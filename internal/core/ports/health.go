package ports

import "context"

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis", "kafka").
	Name() string
}
