package ports

import (
	"context"
	"time"

	"deposit-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// DepositRepository defines persistence operations for deposits.
// Methods accepting pgx.Tx are used inside transaction blocks; the
// ForUpdate variants take a row lock that serializes work on one deposit.
type DepositRepository interface {
	Create(ctx context.Context, tx pgx.Tx, deposit *domain.Deposit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deposit, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deposit, error)
	GetByProviderReference(ctx context.Context, method domain.PaymentMethod, providerRef string) (*domain.Deposit, error)
	// Update persists a transitioned deposit guarded by its version. It
	// returns a DEP_001 conflict when the stored version moved on, and
	// bumps deposit.Version on success.
	Update(ctx context.Context, tx pgx.Tx, deposit *domain.Deposit) error
	ListPendingReview(ctx context.Context, after *ReviewCursor, limit int) ([]domain.Deposit, error)
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ListApprovedUncredited(ctx context.Context, limit int) ([]uuid.UUID, error)
	GetStats(ctx context.Context, since *time.Time) (*DepositStats, error)
}

// ReviewCursor is the keyset position of the last deposit a reviewer saw.
type ReviewCursor struct {
	UpdatedAt time.Time
	ID        uuid.UUID
}

// DepositStats holds aggregated deposit counts and volumes for admins.
type DepositStats struct {
	Total          int64                          `json:"total"`
	ByState        map[domain.DepositState]int64  `json:"by_state"`
	ByMethod       map[domain.PaymentMethod]int64 `json:"by_method"`
	ApprovedVolume int64                          `json:"approved_volume"`
	PendingReview  int64                          `json:"pending_review"`
}

// TransitionRepository appends and reads deposit state history.
type TransitionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.DepositTransition) error
	ListByDeposit(ctx context.Context, depositID uuid.UUID) ([]domain.DepositTransition, error)
}

// LedgerRepository defines the append-only ledger store keyed by idempotency key.
type LedgerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	GetByIdempotencyKey(ctx context.Context, tx pgx.Tx, key string) (*domain.LedgerEntry, error)
	ListByAccount(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
}

// LedgerListParams holds filter + pagination for listing ledger entries.
type LedgerListParams struct {
	AccountID uuid.UUID
	Currency  string
	Page      int
	PageSize  int
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	// Create inserts a wallet unless one already exists for the account and currency.
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByAccount(ctx context.Context, accountID uuid.UUID, currency string) (*domain.Wallet, error)
	GetByAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, encryptedBalance string) error
}

// FeeConfigRepository reads the platform fee configuration.
type FeeConfigRepository interface {
	Get(ctx context.Context) (*domain.PlatformFeeConfig, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
