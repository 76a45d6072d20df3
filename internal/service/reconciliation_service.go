package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	defaultReviewLimit = 50
	maxReviewLimit     = 200
	defaultLockTTL     = 10 * time.Second
)

// ReconciliationConfig holds the deposit lifecycle settings.
type ReconciliationConfig struct {
	PendingTTL time.Duration
	LockTTL    time.Duration
	Currency   string
}

// ReconciliationDeps groups the collaborators of ReconciliationServiceImpl.
// Locker, Notifier and Audit are optional.
type ReconciliationDeps struct {
	Deposits    ports.DepositRepository
	Transitions ports.TransitionRepository
	FeeConfig   ports.FeeConfigRepository
	Gateways    ports.GatewayRegistry
	Ledger      ports.LedgerService
	Locker      ports.DepositLocker
	Notifier    ports.NotificationService
	Audit       ports.AuditService
	Transactor  ports.DBTransactor
}

// ReconciliationServiceImpl implements ports.ReconciliationService.
//
// Every state change follows the same path: optional Redis lock on the
// deposit, SELECT ... FOR UPDATE inside a pgx transaction, the domain
// transition on a clone, a version-guarded UPDATE, a transition row, and,
// for approvals, the ledger credit. Events go out only after commit.
type ReconciliationServiceImpl struct {
	depositRepo    ports.DepositRepository
	transitionRepo ports.TransitionRepository
	feeRepo        ports.FeeConfigRepository
	gateways       ports.GatewayRegistry
	ledger         ports.LedgerService
	locker         ports.DepositLocker
	notifier       ports.NotificationService
	audit          ports.AuditService
	transactor     ports.DBTransactor
	cfg            ReconciliationConfig
	log            zerolog.Logger
	now            func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(deps ReconciliationDeps, cfg ReconciliationConfig, log zerolog.Logger) *ReconciliationServiceImpl {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	if cfg.Currency == "" {
		cfg.Currency = "VND"
	}
	return &ReconciliationServiceImpl{
		depositRepo:    deps.Deposits,
		transitionRepo: deps.Transitions,
		feeRepo:        deps.FeeConfig,
		gateways:       deps.Gateways,
		ledger:         deps.Ledger,
		locker:         deps.Locker,
		notifier:       deps.Notifier,
		audit:          deps.Audit,
		transactor:     deps.Transactor,
		cfg:            cfg,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// NewProviderReference returns a fresh gateway correlation key.
func NewProviderReference() string {
	return ulid.Make().String()
}

// ==================== Initiation ====================

// InitiateDeposit validates the request, asks the method's adapter for a
// payment descriptor and persists the Created deposit. The adapter runs
// first, so an unreachable gateway leaves nothing behind.
func (s *ReconciliationServiceImpl) InitiateDeposit(ctx context.Context, req ports.InitiateDepositRequest) (*ports.DepositInitiation, error) {
	if !domain.ValidAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	adapter, err := s.gateways.Adapter(req.Method)
	if err != nil {
		return nil, err
	}

	feeCfg, err := s.feeRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load fee config: %w", err))
	}
	if feeCfg != nil {
		if err := feeCfg.CheckAmount(req.Amount); err != nil {
			return nil, err
		}
	}

	now := s.now()
	d := domain.NewDeposit(req.AccountID, req.Method, req.Amount, s.cfg.Currency, NewProviderReference(), now, s.cfg.PendingTTL)

	descriptor, err := adapter.Initiate(ctx, ports.InitiateRequest{
		DepositID:         d.ID,
		AccountID:         d.OwnerID,
		Amount:            d.RequestedAmount,
		ProviderReference: d.ProviderReference,
		ReturnTarget:      req.ReturnTarget,
		ClientIP:          req.ClientIP,
		CreatedAt:         d.CreatedAt,
		ExpiresAt:         d.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.depositRepo.Create(ctx, dbTx, d); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deposit: %w", err))
	}
	if err := s.recordTransition(ctx, dbTx, d, "", d.OwnerID.String(), nil); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.DepositsInitiated.WithLabelValues(string(d.Method)).Inc()
	s.log.Info().
		Str("deposit_id", d.ID.String()).
		Str("account_id", d.OwnerID.String()).
		Str("method", string(d.Method)).
		Str("provider_ref", d.ProviderReference).
		Int64("amount", d.RequestedAmount).
		Msg("deposit initiated")
	s.notify(ctx, d, nil)

	return &ports.DepositInitiation{Deposit: d, Descriptor: descriptor}, nil
}

// ==================== Gateway callbacks ====================

// HandleCallback verifies a provider notification and settles its deposit.
// Whenever the method has an adapter the result is non-nil and carries the
// provider acknowledgement, even alongside an error.
func (s *ReconciliationServiceImpl) HandleCallback(ctx context.Context, req ports.CallbackRequest) (*ports.CallbackResult, error) {
	adapter, err := s.gateways.Adapter(req.Method)
	if err != nil {
		return nil, err
	}

	res, err := s.handleCallback(ctx, adapter, req)
	res.AckStatus, res.AckBody = adapter.Acknowledge(res.Ack)
	metrics.Callbacks.WithLabelValues(string(req.Method), string(res.Outcome)).Inc()
	return res, err
}

func (s *ReconciliationServiceImpl) handleCallback(ctx context.Context, adapter ports.GatewayAdapter, req ports.CallbackRequest) (*ports.CallbackResult, error) {
	payment, err := adapter.VerifyCallback(ctx, req.Payload)
	if err != nil {
		if apperror.IsCode(err, apperror.CodeInvalidSignature) {
			metrics.SignatureFailures.WithLabelValues(string(req.Method)).Inc()
			s.rejectCallback(ctx, req, "", signatureReason(err))
			return &ports.CallbackResult{Outcome: domain.CallbackRejected, Ack: domain.AckInvalidSignature}, err
		}
		return &ports.CallbackResult{Outcome: domain.CallbackRejected, Ack: domain.AckRetry}, err
	}

	d, err := s.depositRepo.GetByProviderReference(ctx, req.Method, payment.ProviderReference)
	if err != nil {
		return retryLater(apperror.InternalError(fmt.Errorf("find deposit: %w", err)))
	}
	if d == nil {
		s.rejectCallback(ctx, req, payment.ProviderReference, "unknown provider reference")
		return &ports.CallbackResult{Outcome: domain.CallbackRejected, Ack: domain.AckNotFound}, nil
	}
	depositID := d.ID

	release, err := s.acquire(ctx, d.ID)
	if err != nil {
		return &ports.CallbackResult{Outcome: domain.CallbackRejected, Ack: domain.AckRetry, DepositID: &depositID, State: d.State}, err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return retryLater(apperror.InternalError(fmt.Errorf("begin tx: %w", err)))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.lockDeposit(ctx, dbTx, d.ID)
	if err != nil {
		return retryLater(err)
	}

	result := &ports.CallbackResult{DepositID: &depositID, State: current.State}

	if current.State.IsTerminal() {
		if current.State != domain.StateApproved && payment.Success {
			s.log.Error().
				Str("deposit_id", current.ID.String()).
				Str("method", string(req.Method)).
				Str("provider_ref", payment.ProviderReference).
				Str("state", string(current.State)).
				Msg("gateway reports payment for a closed deposit, manual refund required")
		}
		result.Outcome, result.Ack = domain.CallbackDuplicate, domain.AckAlreadyConfirmed
		return result, nil
	}

	if payment.Success && payment.Amount != current.RequestedAmount {
		s.rejectCallback(ctx, req, payment.ProviderReference,
			fmt.Sprintf("amount mismatch: requested %d, paid %d", current.RequestedAmount, payment.Amount))
		result.Outcome, result.Ack = domain.CallbackRejected, domain.AckInvalidAmount
		return result, nil
	}

	next := current.Clone()
	if err := next.Settle(*payment, s.now()); err != nil {
		s.rejectCallback(ctx, req, payment.ProviderReference, err.Error())
		result.Outcome, result.Ack = domain.CallbackRejected, domain.AckAlreadyConfirmed
		return result, err
	}

	if err := s.applyTransition(ctx, dbTx, current, next, domain.SystemActor(req.Method), next.RejectReason); err != nil {
		return retryLater(err)
	}

	var entry *domain.LedgerEntry
	if next.State == domain.StateApproved {
		entry, err = s.ledger.Credit(ctx, dbTx, creditFor(next))
		if err != nil {
			return retryLater(err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return retryLater(apperror.InternalError(fmt.Errorf("commit tx: %w", err)))
	}

	s.committed(ctx, current.State, next, entry)
	s.log.Info().
		Str("deposit_id", next.ID.String()).
		Str("method", string(req.Method)).
		Str("provider_ref", payment.ProviderReference).
		Str("result_code", payment.ResultCode).
		Str("state", string(next.State)).
		Msg("callback applied")

	result.State = next.State
	result.Outcome, result.Ack = domain.CallbackAccepted, domain.AckOK
	return result, nil
}

func retryLater(err error) (*ports.CallbackResult, error) {
	return &ports.CallbackResult{Outcome: domain.CallbackRejected, Ack: domain.AckRetry}, err
}

// signatureReason digs the internal reason out of a SEC_002 for logging.
func signatureReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		return appErr.Err.Error()
	}
	return "invalid signature"
}

// rejectCallback logs and audits a callback that changed nothing.
func (s *ReconciliationServiceImpl) rejectCallback(ctx context.Context, req ports.CallbackRequest, providerRef, reason string) {
	s.log.Warn().
		Str("method", string(req.Method)).
		Str("provider_ref", providerRef).
		Str("remote_ip", req.RemoteIP).
		Str("reason", reason).
		Msg("callback rejected")

	if s.audit == nil {
		return
	}
	details, _ := json.Marshal(map[string]string{"method": string(req.Method), "reason": reason})
	s.audit.Log(ctx, &domain.AuditLog{
		Action:       domain.AuditActionCallbackRejected,
		ResourceType: domain.AuditResourceCallback,
		ResourceID:   providerRef,
		Details:      string(details),
		IPAddress:    req.RemoteIP,
	})
}

// ==================== Manual review ====================

// SubmitProof attaches transfer evidence to a manual deposit and queues it
// for review in one transaction. Resubmitting the same reference returns
// the deposit unchanged.
func (s *ReconciliationServiceImpl) SubmitProof(ctx context.Context, depositID uuid.UUID, requester ports.Requester, proofReference string) (*domain.Deposit, error) {
	if proofReference == "" {
		return nil, apperror.Validation("proof reference is required")
	}

	release, err := s.acquire(ctx, depositID)
	if err != nil {
		return nil, err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.lockDeposit(ctx, dbTx, depositID)
	if err != nil {
		return nil, err
	}
	if !requester.CanActOn(current.OwnerID) {
		return nil, apperror.ErrForbidden()
	}
	if current.ProofReference != nil && *current.ProofReference == proofReference {
		return current, nil
	}

	now := s.now()
	attached := current.Clone()
	if err := attached.AttachProof(proofReference, now); err != nil {
		return nil, err
	}
	queued := attached.Clone()
	if err := queued.MarkUnderReview(now); err != nil {
		return nil, err
	}

	actor := requester.AccountID.String()
	if err := s.saveDeposit(ctx, dbTx, queued); err != nil {
		return nil, err
	}
	// Two history rows for one write: the proof landed, then review began.
	if err := s.recordTransition(ctx, dbTx, attached, current.State, actor, nil); err != nil {
		return nil, err
	}
	if err := s.recordTransition(ctx, dbTx, queued, attached.State, actor, nil); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.StateTransitions.WithLabelValues(string(current.State), string(attached.State)).Inc()
	metrics.StateTransitions.WithLabelValues(string(attached.State), string(queued.State)).Inc()
	s.log.Info().
		Str("deposit_id", queued.ID.String()).
		Str("actor", actor).
		Msg("proof submitted, deposit under review")
	s.notify(ctx, queued, nil)

	return queued, nil
}

// ListPendingReview returns one page of UnderReview deposits, oldest first.
// Passing the returned cursor back continues after the last row seen, so a
// reviewer can stop and resume without skipping or repeating deposits.
func (s *ReconciliationServiceImpl) ListPendingReview(ctx context.Context, query ports.PendingReviewQuery) (*ports.PendingReviewPage, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}

	deposits, err := s.depositRepo.ListPendingReview(ctx, query.After, limit+1)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	page := &ports.PendingReviewPage{Deposits: deposits}
	if len(deposits) > limit {
		page.Deposits = deposits[:limit]
		last := page.Deposits[limit-1]
		page.Next = &ports.ReviewCursor{UpdatedAt: last.UpdatedAt, ID: last.ID}
	}
	if page.Deposits == nil {
		page.Deposits = []domain.Deposit{}
	}
	return page, nil
}

// Decide applies an admin approval or rejection. Approval credits the
// ledger in the same transaction, so a deposit is never Approved without
// its credit. A zero approval amount means the requested amount.
func (s *ReconciliationServiceImpl) Decide(ctx context.Context, req ports.DecisionRequest) (*ports.DecisionResult, error) {
	switch req.Outcome {
	case ports.DecisionApprove:
		if req.Amount < 0 {
			return nil, apperror.ErrInvalidAmount()
		}
	case ports.DecisionReject:
		if req.Reason == "" {
			return nil, apperror.Validation("reject reason is required")
		}
	default:
		return nil, apperror.Validation("outcome must be APPROVE or REJECT")
	}

	release, err := s.acquire(ctx, req.DepositID)
	if err != nil {
		return nil, err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.lockDeposit(ctx, dbTx, req.DepositID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	next := current.Clone()
	result := &ports.DecisionResult{Deposit: next}
	var reason *string

	if req.Outcome == ports.DecisionApprove {
		amount := req.Amount
		if amount == 0 {
			amount = current.RequestedAmount
		}
		mismatch, err := next.Approve(req.AdminID, amount, now)
		if err != nil {
			return nil, err
		}
		result.Mismatch = mismatch
		if mismatch != nil {
			r := fmt.Sprintf("approved %d of %d requested", mismatch.ApprovedAmount, mismatch.RequestedAmount)
			reason = &r
		}
	} else {
		if err := next.Reject(req.AdminID, req.Reason, now); err != nil {
			return nil, err
		}
		reason = next.RejectReason
	}

	if err := s.applyTransition(ctx, dbTx, current, next, req.AdminID.String(), reason); err != nil {
		return nil, err
	}

	if next.State == domain.StateApproved {
		result.Entry, err = s.ledger.Credit(ctx, dbTx, creditFor(next))
		if err != nil {
			return nil, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.committed(ctx, current.State, next, result.Entry)
	logEvent := s.log.Info().
		Str("deposit_id", next.ID.String()).
		Str("admin_id", req.AdminID.String()).
		Str("state", string(next.State))
	if result.Mismatch != nil {
		logEvent = logEvent.Int64("amount_delta", result.Mismatch.Delta)
	}
	logEvent.Msg("deposit decided")

	return result, nil
}

// ==================== Queries & recovery ====================

// GetDeposit returns a deposit with its history to its owner or an admin.
func (s *ReconciliationServiceImpl) GetDeposit(ctx context.Context, id uuid.UUID, requester ports.Requester) (*ports.DepositDetails, error) {
	d, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if d == nil {
		return nil, apperror.ErrNotFound("deposit")
	}
	if !requester.CanActOn(d.OwnerID) {
		return nil, apperror.ErrForbidden()
	}

	transitions, err := s.transitionRepo.ListByDeposit(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if transitions == nil {
		transitions = []domain.DepositTransition{}
	}
	return &ports.DepositDetails{Deposit: d, Transitions: transitions}, nil
}

// RetryCredit credits an Approved deposit whose credit never landed. It is
// safe to call on a credited deposit: the existing entry comes back.
func (s *ReconciliationServiceImpl) RetryCredit(ctx context.Context, depositID uuid.UUID) (*domain.LedgerEntry, error) {
	d, err := s.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if d == nil {
		return nil, apperror.ErrNotFound("deposit")
	}
	if d.State != domain.StateApproved || d.ApprovedAmount == nil {
		return nil, apperror.ErrStateConflict(string(d.State), string(domain.StateApproved))
	}

	entry, err := s.ledger.CreditStandalone(ctx, creditFor(d))
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("deposit_id", d.ID.String()).
		Str("entry_id", entry.ID.String()).
		Msg("credit retried")
	return entry, nil
}

// ExpireDeposit closes an automated deposit whose callback never arrived.
// It takes the same locks as a callback, so exactly one of them wins.
func (s *ReconciliationServiceImpl) ExpireDeposit(ctx context.Context, depositID uuid.UUID) (*domain.Deposit, error) {
	release, err := s.acquire(ctx, depositID)
	if err != nil {
		return nil, err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.lockDeposit(ctx, dbTx, depositID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := next.Expire(s.now()); err != nil {
		return nil, err
	}
	if err := s.applyTransition(ctx, dbTx, current, next, domain.ActorSweeper, next.RejectReason); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.committed(ctx, current.State, next, nil)
	s.log.Info().Str("deposit_id", next.ID.String()).Msg("deposit expired")
	return next, nil
}

// ==================== Helpers ====================

// acquire takes the Redis deposit lock. Redis being down is not fatal: the
// row lock still serializes writers. A held lock is DEP_002.
func (s *ReconciliationServiceImpl) acquire(ctx context.Context, depositID uuid.UUID) (func(), error) {
	noop := func() {}
	if s.locker == nil {
		return noop, nil
	}

	token, ok, err := s.locker.TryLock(ctx, depositID, s.cfg.LockTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("deposit_id", depositID.String()).Msg("deposit lock unavailable, relying on row lock")
		return noop, nil
	}
	if !ok {
		return nil, apperror.ErrDepositBusy()
	}

	return func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), depositID, token); err != nil {
			s.log.Warn().Err(err).Str("deposit_id", depositID.String()).Msg("failed to release deposit lock")
		}
	}, nil
}

func (s *ReconciliationServiceImpl) lockDeposit(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deposit, error) {
	d, err := s.depositRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		// A row lock that timed out is contention, not a failure.
		if apperror.IsCode(err, apperror.CodeDepositBusy) {
			return nil, err
		}
		return nil, apperror.InternalError(fmt.Errorf("lock deposit: %w", err))
	}
	if d == nil {
		return nil, apperror.ErrNotFound("deposit")
	}
	return d, nil
}

// applyTransition saves next and appends the history row for the move
// from current.
func (s *ReconciliationServiceImpl) applyTransition(ctx context.Context, tx pgx.Tx, current, next *domain.Deposit, actor string, reason *string) error {
	if err := s.saveDeposit(ctx, tx, next); err != nil {
		return err
	}
	return s.recordTransition(ctx, tx, next, current.State, actor, reason)
}

// saveDeposit is the version-guarded write; a lost race surfaces as DEP_001.
func (s *ReconciliationServiceImpl) saveDeposit(ctx context.Context, tx pgx.Tx, next *domain.Deposit) error {
	err := s.depositRepo.Update(ctx, tx, next)
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(fmt.Errorf("update deposit: %w", err))
}

func (s *ReconciliationServiceImpl) recordTransition(ctx context.Context, tx pgx.Tx, d *domain.Deposit, from domain.DepositState, actor string, reason *string) error {
	t := &domain.DepositTransition{
		ID:        uuid.New(),
		DepositID: d.ID,
		FromState: from,
		ToState:   d.State,
		Actor:     actor,
		Reason:    reason,
		CreatedAt: d.UpdatedAt,
	}
	if err := s.transitionRepo.Create(ctx, tx, t); err != nil {
		return apperror.InternalError(fmt.Errorf("record transition: %w", err))
	}
	return nil
}

// committed runs the post-commit side effects of a single transition.
func (s *ReconciliationServiceImpl) committed(ctx context.Context, from domain.DepositState, d *domain.Deposit, entry *domain.LedgerEntry) {
	metrics.StateTransitions.WithLabelValues(string(from), string(d.State)).Inc()
	s.notify(ctx, d, entry)
}

func (s *ReconciliationServiceImpl) notify(ctx context.Context, d *domain.Deposit, entry *domain.LedgerEntry) {
	if s.notifier != nil {
		s.notifier.DepositChanged(ctx, d, entry)
	}
}

func creditFor(d *domain.Deposit) domain.CreditRequest {
	return domain.CreditRequest{
		AccountID:      d.OwnerID,
		Amount:         *d.ApprovedAmount,
		Currency:       d.Currency,
		IdempotencyKey: domain.CreditKey(d.ID),
		DepositID:      d.ID,
	}
}
