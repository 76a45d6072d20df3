package service

import (
	"context"
	"sync"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

// AuditServiceImpl writes audit entries off the request path.
type AuditServiceImpl struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget). The write
// outlives the request context but not auditWriteTimeout.
func (s *AuditServiceImpl) Log(ctx context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.log.Info().
		Str("action", string(entry.Action)).
		Str("resource_type", string(entry.ResourceType)).
		Str("resource_id", entry.ResourceID).
		Str("ip", entry.IPAddress).
		Msg("audit")

	if s.repo == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
		defer cancel()

		if err := s.repo.Create(writeCtx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}

// Wait blocks until pending audit writes finish. Called on shutdown.
func (s *AuditServiceImpl) Wait() {
	s.wg.Wait()
}
