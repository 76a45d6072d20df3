// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "deposit_gateway"

var (
	DepositsInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_initiated_total",
			Help:      "Deposits created, by payment method",
		},
		[]string{"method"},
	)

	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposit_transitions_total",
			Help:      "Committed deposit state transitions",
		},
		[]string{"from", "to"},
	)

	Callbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callbacks_total",
			Help:      "Gateway callbacks handled, by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	SignatureFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "callback_signature_failures_total",
			Help:      "Callbacks rejected for a bad or malformed signature",
		},
		[]string{"method"},
	)

	LedgerCredits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_credits_total",
			Help:      "Ledger credit attempts, by result (credited, duplicate)",
		},
		[]string{"result"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Duration of outbound gateway API calls",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	EventPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Deposit events that could not be published",
		},
	)

	SweeperRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_actions_total",
			Help:      "Deposits touched by the expiry sweeper, by action (expired, credit_recovered, failed)",
		},
		[]string{"action"},
	)
)
