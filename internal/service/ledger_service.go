package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	walletRepo ports.WalletRepository
	feeRepo    ports.FeeConfigRepository
	idempCache ports.IdempotencyCache
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	walletRepo ports.WalletRepository,
	feeRepo ports.FeeConfigRepository,
	idempCache ports.IdempotencyCache,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		walletRepo: walletRepo,
		feeRepo:    feeRepo,
		idempCache: idempCache,
		encSvc:     encSvc,
		transactor: transactor,
		log:        log,
	}
}

// Credit adds req.Amount minus the platform fee to the account wallet,
// once per idempotency key. It must run inside the caller's transaction:
// the wallet row lock serializes concurrent credits to the same account,
// and a repeated key returns the entry already written.
func (s *LedgerServiceImpl) Credit(ctx context.Context, tx pgx.Tx, req domain.CreditRequest) (*domain.LedgerEntry, error) {
	if !domain.ValidAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.IdempotencyKey == "" {
		return nil, apperror.Validation("idempotency key is required")
	}

	wallet, err := s.lockWallet(ctx, tx, req.AccountID, req.Currency)
	if err != nil {
		return nil, err
	}

	// Checked under the wallet lock, so two credits racing on one key
	// cannot both miss.
	existing, err := s.ledgerRepo.GetByIdempotencyKey(ctx, tx, req.IdempotencyKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger idempotency check: %w", err))
	}
	if existing != nil {
		metrics.LedgerCredits.WithLabelValues("duplicate").Inc()
		s.log.Info().
			Str("idempotency_key", req.IdempotencyKey).
			Str("entry_id", existing.ID.String()).
			Msg("credit already applied")
		return existing, nil
	}

	feeCfg, err := s.feeRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load fee config: %w", err))
	}
	var fee int64
	if feeCfg != nil {
		fee = feeCfg.Fee(req.Amount)
	}
	net := req.Amount - fee

	balanceStr, err := s.encSvc.Decrypt(wallet.EncryptedBalance)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt balance: %w", err))
	}
	currentBalance, err := strconv.ParseInt(balanceStr, 10, 64)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse balance: %w", err))
	}

	if currentBalance > 0 && net > math.MaxInt64-currentBalance {
		return nil, apperror.ErrBalanceOverflow()
	}
	newBalance := currentBalance + net
	newBalanceEnc, err := s.encSvc.Encrypt(strconv.FormatInt(newBalance, 10))
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt new balance: %w", err))
	}

	entry := &domain.LedgerEntry{
		ID:             uuid.New(),
		AccountID:      req.AccountID,
		WalletID:       wallet.ID,
		DepositID:      req.DepositID,
		IdempotencyKey: req.IdempotencyKey,
		EntryType:      domain.LedgerEntryDepositCredit,
		GrossAmount:    req.Amount,
		FeeAmount:      fee,
		NetAmount:      net,
		BalanceAfter:   newBalance,
		Currency:       wallet.Currency,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.ledgerRepo.Create(ctx, tx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger entry: %w", err))
	}
	if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalanceEnc); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	metrics.LedgerCredits.WithLabelValues("credited").Inc()
	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("account_id", req.AccountID.String()).
		Str("deposit_id", req.DepositID.String()).
		Int64("gross", req.Amount).
		Int64("fee", fee).
		Msg("wallet credited")

	return entry, nil
}

// lockWallet locks the account wallet, opening it with a zero balance on
// the first credit.
func (s *LedgerServiceImpl) lockWallet(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByAccountForUpdate(ctx, tx, accountID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}

	zeroEnc, err := s.encSvc.Encrypt("0")
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt opening balance: %w", err))
	}
	if err := s.walletRepo.Create(ctx, tx, domain.OpenWallet(accountID, currency, zeroEnc, time.Now().UTC())); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	// Re-read under lock: a concurrent first credit may have won the insert.
	wallet, err = s.walletRepo.GetByAccountForUpdate(ctx, tx, accountID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet for account %s missing after create", accountID))
	}
	return wallet, nil
}

// CreditStandalone runs Credit in its own transaction. Redis is checked
// first and filled after commit; both are best effort since the ledger's
// unique idempotency key is the source of truth.
func (s *LedgerServiceImpl) CreditStandalone(ctx context.Context, req domain.CreditRequest) (*domain.LedgerEntry, error) {
	cached, err := s.idempCache.Get(ctx, req.IdempotencyKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", req.IdempotencyKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		var entry domain.LedgerEntry
		if err := json.Unmarshal(cached, &entry); err == nil {
			return &entry, nil
		}
		s.log.Warn().Str("key", req.IdempotencyKey).Msg("discarding unreadable cached ledger entry")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	entry, err := s.Credit(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.remember(ctx, entry)
	return entry, nil
}

// remember caches a committed entry under its idempotency key.
func (s *LedgerServiceImpl) remember(ctx context.Context, entry *domain.LedgerEntry) {
	respJSON, err := json.Marshal(entry)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal ledger entry for cache")
		return
	}
	if err := s.idempCache.Set(ctx, entry.IdempotencyKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", entry.IdempotencyKey).Msg("failed to cache idempotency in redis")
	}
}
