package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgLockNotAvailable is raised when a row lock outlasts lock_timeout.
const pgLockNotAvailable = "55P03"

const depositColumns = `id, owner_id, method, state, requested_amount, approved_amount, amount_delta,
		currency, provider_reference, gateway_transaction_id, proof_reference, reject_reason,
		decided_by, decided_at, expires_at, version, created_at, updated_at`

// DepositRepo implements ports.DepositRepository.
type DepositRepo struct {
	pool Pool
}

// NewDepositRepo creates a new DepositRepo.
func NewDepositRepo(pool Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

// Create inserts a new deposit within a database transaction.
func (r *DepositRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Deposit) error {
	query := `INSERT INTO deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.OwnerID, d.Method, d.State, d.RequestedAmount, d.ApprovedAmount, d.AmountDelta,
		d.Currency, d.ProviderReference, d.GatewayTransactionID, d.ProofReference, d.RejectReason,
		d.DecidedBy, d.DecidedAt, d.ExpiresAt, d.Version, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

// GetByID fetches a deposit by UUID (without locking).
func (r *DepositRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1`
	return scanDeposit(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a deposit with a row lock.
// This MUST be called within a transaction. Waiting longer than the
// transaction's lock_timeout yields DEP_002.
func (r *DepositRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1 FOR UPDATE`
	d, err := scanDeposit(tx.QueryRow(ctx, query, id))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
		return nil, apperror.ErrDepositBusy()
	}
	return d, err
}

// GetByProviderReference resolves a gateway callback to its deposit.
func (r *DepositRepo) GetByProviderReference(ctx context.Context, method domain.PaymentMethod, providerRef string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE method = $1 AND provider_reference = $2`
	return scanDeposit(r.pool.QueryRow(ctx, query, method, providerRef))
}

// Update writes the mutable fields of a transitioned deposit. The row must
// still carry the version the caller read; otherwise another writer won.
func (r *DepositRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Deposit) error {
	query := `UPDATE deposits SET state = $1, approved_amount = $2, amount_delta = $3,
		gateway_transaction_id = $4, proof_reference = $5, reject_reason = $6,
		decided_by = $7, decided_at = $8, updated_at = $9, version = version + 1
		WHERE id = $10 AND version = $11`

	tag, err := tx.Exec(ctx, query,
		d.State, d.ApprovedAmount, d.AmountDelta,
		d.GatewayTransactionID, d.ProofReference, d.RejectReason,
		d.DecidedBy, d.DecidedAt, d.UpdatedAt,
		d.ID, d.Version,
	)
	if err != nil {
		return fmt.Errorf("update deposit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrConcurrentUpdate()
	}
	d.Version++
	return nil
}

// ListPendingReview pages through UnderReview deposits oldest first, keyed
// on (updated_at, id) so a reviewer can resume after the last row seen.
func (r *DepositRepo) ListPendingReview(ctx context.Context, after *ports.ReviewCursor, limit int) ([]domain.Deposit, error) {
	args := []any{domain.StateUnderReview}
	where := "state = $1"
	if after != nil {
		where += " AND (updated_at, id) > ($2, $3)"
		args = append(args, after.UpdatedAt, after.ID)
	}
	args = append(args, limit)

	query := fmt.Sprintf(`SELECT %s FROM deposits WHERE %s ORDER BY updated_at, id LIMIT $%d`,
		depositColumns, where, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending review: %w", err)
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit rows: %w", err)
	}
	return deposits, nil
}

// ListExpirable returns automated deposits still Created past their expiry.
func (r *DepositRepo) ListExpirable(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `SELECT id FROM deposits
		WHERE state = $1 AND method <> $2 AND expires_at <= $3
		ORDER BY expires_at LIMIT $4`

	return r.collectIDs(ctx, "list expirable deposits", query,
		domain.StateCreated, domain.MethodBankTransfer, now, limit)
}

// ListApprovedUncredited returns Approved deposits with no ledger entry,
// which only happens when a process died between commit and credit.
func (r *DepositRepo) ListApprovedUncredited(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query := `SELECT d.id FROM deposits d
		LEFT JOIN ledger_entries l ON l.idempotency_key = d.id::text
		WHERE d.state = $1 AND l.id IS NULL
		ORDER BY d.updated_at LIMIT $2`

	return r.collectIDs(ctx, "list uncredited deposits", query, domain.StateApproved, limit)
}

func (r *DepositRepo) collectIDs(ctx context.Context, op, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// GetStats aggregates deposit counts per state and method.
func (r *DepositRepo) GetStats(ctx context.Context, since *time.Time) (*ports.DepositStats, error) {
	var args []any
	where := ""
	if since != nil {
		where = "WHERE created_at >= $1"
		args = append(args, *since)
	}

	query := fmt.Sprintf(`SELECT state, method, COUNT(*),
		COALESCE(SUM(approved_amount) FILTER (WHERE state = 'APPROVED'), 0)
		FROM deposits %s GROUP BY state, method`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get deposit stats: %w", err)
	}
	defer rows.Close()

	stats := &ports.DepositStats{
		ByState:  make(map[domain.DepositState]int64),
		ByMethod: make(map[domain.PaymentMethod]int64),
	}
	for rows.Next() {
		var (
			state  domain.DepositState
			method domain.PaymentMethod
			count  int64
			volume int64
		)
		if err := rows.Scan(&state, &method, &count, &volume); err != nil {
			return nil, fmt.Errorf("scan deposit stats: %w", err)
		}
		stats.Total += count
		stats.ByState[state] += count
		stats.ByMethod[method] += count
		stats.ApprovedVolume += volume
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit stats: %w", err)
	}
	stats.PendingReview = stats.ByState[domain.StateUnderReview]
	return stats, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	d := &domain.Deposit{}
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.Method, &d.State, &d.RequestedAmount, &d.ApprovedAmount, &d.AmountDelta,
		&d.Currency, &d.ProviderReference, &d.GatewayTransactionID, &d.ProofReference, &d.RejectReason,
		&d.DecidedBy, &d.DecidedAt, &d.ExpiresAt, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deposit: %w", err)
	}
	return d, nil
}
