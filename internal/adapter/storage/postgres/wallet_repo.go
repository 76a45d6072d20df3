package postgres

import (
	"context"
	"errors"
	"fmt"

	"deposit-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, account_id, currency, encrypted_balance, created_at, updated_at`

// WalletRepo stores one row per (account, currency). Balances are written
// only by the ledger, inside the same transaction as the ledger entry.
type WalletRepo struct {
	pool Pool
}

func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create opens a wallet. Losing the insert race to a concurrent first
// credit is not an error; the caller re-reads under lock.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO wallets (`+walletColumns+`) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, currency) DO NOTHING`,
		w.ID, w.AccountID, w.Currency, w.EncryptedBalance, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet for %s/%s: %w", w.AccountID, w.Currency, err)
	}
	return nil
}

// GetByAccount is the unlocked read behind the balance endpoint.
func (r *WalletRepo) GetByAccount(ctx context.Context, accountID uuid.UUID, currency string) (*domain.Wallet, error) {
	return scanWallet(r.pool.QueryRow(ctx, walletByAccount(false), accountID, currency))
}

// GetByAccountForUpdate locks the wallet row until tx ends. It MUST be
// called within a transaction.
func (r *WalletRepo) GetByAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, currency string) (*domain.Wallet, error) {
	return scanWallet(tx.QueryRow(ctx, walletByAccount(true), accountID, currency))
}

func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, encryptedBalance string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE wallets SET encrypted_balance = $1, updated_at = NOW() WHERE id = $2`,
		encryptedBalance, walletID,
	)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

func walletByAccount(forUpdate bool) string {
	q := `SELECT ` + walletColumns + ` FROM wallets WHERE account_id = $1 AND currency = $2`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	return q
}

// scanWallet maps a missing row to (nil, nil).
func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.AccountID, &w.Currency, &w.EncryptedBalance, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return &w, nil
}
