package service

import (
	"context"
	"time"

	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"
	"deposit-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// SweepReport counts what one sweep did.
type SweepReport struct {
	Expired         int
	CreditRecovered int
	Failed          int
}

// ExpirySweeper periodically expires automated deposits whose callback never
// came and re-drives credits for Approved deposits that have no ledger entry.
type ExpirySweeper struct {
	deposits ports.DepositRepository
	recon    ports.ReconciliationService
	interval time.Duration
	batch    int
	log      zerolog.Logger
	now      func() time.Time
}

// NewExpirySweeper creates a sweeper running every interval over at most
// batch deposits per pass.
func NewExpirySweeper(deposits ports.DepositRepository, recon ports.ReconciliationService, interval time.Duration, batch int, log zerolog.Logger) *ExpirySweeper {
	if batch <= 0 {
		batch = 100
	}
	return &ExpirySweeper{
		deposits: deposits,
		recon:    recon,
		interval: interval,
		batch:    batch,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps until ctx is canceled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Int("batch", s.batch).Msg("expiry sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("expiry sweeper stopped")
			return
		case <-ticker.C:
			report := s.SweepOnce(ctx)
			if report.Expired+report.CreditRecovered+report.Failed > 0 {
				s.log.Info().
					Int("expired", report.Expired).
					Int("credit_recovered", report.CreditRecovered).
					Int("failed", report.Failed).
					Msg("sweep finished")
			}
		}
	}
}

// SweepOnce runs a single pass. Losing a race to a callback or an admin is
// expected and not counted as a failure.
func (s *ExpirySweeper) SweepOnce(ctx context.Context) SweepReport {
	var report SweepReport

	expirable, err := s.deposits.ListExpirable(ctx, s.now(), s.batch)
	if err != nil {
		s.log.Error().Err(err).Msg("list expirable deposits")
		report.Failed++
	}
	for _, id := range expirable {
		if ctx.Err() != nil {
			return report
		}
		_, err := s.recon.ExpireDeposit(ctx, id)
		switch {
		case err == nil:
			report.Expired++
			metrics.SweeperRuns.WithLabelValues("expired").Inc()
		case apperror.IsCode(err, apperror.CodeStateConflict), apperror.IsCode(err, apperror.CodeDepositBusy):
			s.log.Debug().Str("deposit_id", id.String()).Msg("deposit settled concurrently, skipping")
		default:
			report.Failed++
			metrics.SweeperRuns.WithLabelValues("failed").Inc()
			s.log.Warn().Err(err).Str("deposit_id", id.String()).Msg("expire deposit")
		}
	}

	uncredited, err := s.deposits.ListApprovedUncredited(ctx, s.batch)
	if err != nil {
		s.log.Error().Err(err).Msg("list uncredited deposits")
		report.Failed++
	}
	for _, id := range uncredited {
		if ctx.Err() != nil {
			return report
		}
		if _, err := s.recon.RetryCredit(ctx, id); err != nil {
			report.Failed++
			metrics.SweeperRuns.WithLabelValues("failed").Inc()
			s.log.Warn().Err(err).Str("deposit_id", id.String()).Msg("recover credit")
			continue
		}
		report.CreditRecovered++
		metrics.SweeperRuns.WithLabelValues("credit_recovered").Inc()
	}

	return report
}
