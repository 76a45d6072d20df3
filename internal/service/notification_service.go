package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"

	"github.com/rs/zerolog"
)

const (
	publishTimeout = 5 * time.Second
	eventQueueSize = 256
)

// Event headers read by the notification fan-out.
const (
	HeaderEventType = "X-Event-Type"
	HeaderEventID   = "X-Event-Id"
	HeaderTimestamp = "X-Timestamp"
	HeaderSignature = "X-Signature"
)

// NotificationServiceImpl publishes signed deposit events to the
// notification fan-out. Events are handed to a single background worker
// through a bounded queue, so callers never wait on the broker and events
// for one deposit leave in commit order.
type NotificationServiceImpl struct {
	publisher     ports.EventPublisher
	sigSvc        ports.SignatureService
	signingSecret string
	log           zerolog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan outboundEvent
	done   chan struct{}
}

type outboundEvent struct {
	depositID string
	eventType domain.EventType
	body      []byte
	headers   map[string]string
}

// NewNotificationService creates a notification service and starts its
// publish worker. Close stops it.
func NewNotificationService(
	publisher ports.EventPublisher,
	sigSvc ports.SignatureService,
	signingSecret string,
	log zerolog.Logger,
) *NotificationServiceImpl {
	return newNotificationService(publisher, sigSvc, signingSecret, eventQueueSize, log)
}

func newNotificationService(
	publisher ports.EventPublisher,
	sigSvc ports.SignatureService,
	signingSecret string,
	queueSize int,
	log zerolog.Logger,
) *NotificationServiceImpl {
	s := &NotificationServiceImpl{
		publisher:     publisher,
		sigSvc:        sigSvc,
		signingSecret: signingSecret,
		log:           log,
		queue:         make(chan outboundEvent, queueSize),
		done:          make(chan struct{}),
	}
	go s.run()
	return s
}

// EventSigningString is what X-Signature covers: "<timestamp>|<body>".
func EventSigningString(timestamp int64, body []byte) string {
	return strconv.FormatInt(timestamp, 10) + "|" + string(body)
}

// DepositChanged queues the event for the deposit's current state. It is
// called after commit; failures are logged and counted, never returned.
func (s *NotificationServiceImpl) DepositChanged(_ context.Context, deposit *domain.Deposit, entry *domain.LedgerEntry) {
	now := time.Now().UTC()
	event, ok := domain.NewDepositEvent(deposit, now)
	if !ok {
		return
	}
	if entry != nil {
		net := entry.NetAmount
		event.NetCredited = &net
	}

	body, err := json.Marshal(event)
	if err != nil {
		metrics.EventPublishErrors.Inc()
		s.log.Error().Err(err).Str("deposit_id", deposit.ID.String()).Msg("event: failed to marshal")
		return
	}

	ts := now.Unix()
	headers := map[string]string{
		HeaderEventType: string(event.Type),
		HeaderEventID:   event.EventID.String(),
		HeaderTimestamp: strconv.FormatInt(ts, 10),
		HeaderSignature: s.sigSvc.Sign(s.signingSecret, EventSigningString(ts, body)),
	}

	s.enqueue(outboundEvent{
		depositID: deposit.ID.String(),
		eventType: event.Type,
		body:      body,
		headers:   headers,
	})
}

// enqueue never blocks. A full queue or a closed service drops the event.
func (s *NotificationServiceImpl) enqueue(ev outboundEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.closed {
		select {
		case s.queue <- ev:
			return
		default:
		}
	}
	metrics.EventPublishErrors.Inc()
	s.log.Warn().
		Str("deposit_id", ev.depositID).
		Str("event", string(ev.eventType)).
		Bool("closed", s.closed).
		Msg("event: dropped, publish queue unavailable")
}

func (s *NotificationServiceImpl) run() {
	defer close(s.done)
	for ev := range s.queue {
		s.publish(ev)
	}
}

func (s *NotificationServiceImpl) publish(ev outboundEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, ev.depositID, ev.body, ev.headers); err != nil {
		metrics.EventPublishErrors.Inc()
		s.log.Warn().Err(err).
			Str("deposit_id", ev.depositID).
			Str("event", string(ev.eventType)).
			Msg("event: publish failed")
		return
	}

	s.log.Debug().
		Str("deposit_id", ev.depositID).
		Str("event", string(ev.eventType)).
		Msg("event: published")
}

// Close stops accepting events and waits for the queued ones to be
// published. It is safe to call more than once.
func (s *NotificationServiceImpl) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}
