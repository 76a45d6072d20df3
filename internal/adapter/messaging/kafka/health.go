package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// HealthCheck implements ports.HealthChecker by dialing the brokers until
// one answers.
type HealthCheck struct {
	brokers []string
	dialer  *kafka.Dialer
}

func NewHealthCheck(brokers []string) *HealthCheck {
	return &HealthCheck{brokers: brokers, dialer: &kafka.Dialer{}}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if len(h.brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	var errs []error
	for _, b := range h.brokers {
		conn, err := h.dialer.DialContext(ctx, "tcp", b)
		if err == nil {
			return conn.Close()
		}
		errs = append(errs, fmt.Errorf("%s: %w", b, err))
	}
	return errors.Join(errs...)
}

func (h *HealthCheck) Name() string {
	return "kafka"
}
