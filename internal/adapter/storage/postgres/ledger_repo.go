package postgres

import (
	"context"
	"errors"
	"fmt"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `id, account_id, wallet_id, deposit_id, idempotency_key, entry_type,
		gross_amount, fee_amount, net_amount, balance_after, currency, created_at`

// LedgerRepo implements ports.LedgerRepository. The idempotency_key column
// is UNIQUE, which is the database half of once-only crediting.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *LedgerRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.AccountID, e.WalletID, e.DepositID, e.IdempotencyKey, e.EntryType,
		e.GrossAmount, e.FeeAmount, e.NetAmount, e.BalanceAfter, e.Currency, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByIdempotencyKey looks up an existing credit inside the caller's
// transaction, after the wallet row lock is held.
func (r *LedgerRepo) GetByIdempotencyKey(ctx context.Context, tx pgx.Tx, key string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE idempotency_key = $1`

	e, err := scanLedgerEntry(tx.QueryRow(ctx, query, key))
	if err != nil {
		return nil, fmt.Errorf("get ledger entry by key: %w", err)
	}
	return e, nil
}

// ListByAccount pages through an account's ledger, newest first.
func (r *LedgerRepo) ListByAccount(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	where := "WHERE account_id = $1"
	args := []any{params.AccountID}
	if params.Currency != "" {
		where += " AND currency = $2"
		args = append(args, params.Currency)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM ledger_entries " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM ledger_entries %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		ledgerColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, total, nil
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	e := &domain.LedgerEntry{}
	err := row.Scan(
		&e.ID, &e.AccountID, &e.WalletID, &e.DepositID, &e.IdempotencyKey, &e.EntryType,
		&e.GrossAmount, &e.FeeAmount, &e.NetAmount, &e.BalanceAfter, &e.Currency, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}
