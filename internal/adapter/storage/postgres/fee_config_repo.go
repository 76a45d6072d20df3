package postgres

import (
	"context"
	"errors"
	"fmt"

	"deposit-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FeeConfigRepo reads the single platform_fee_config row maintained by the
// admin-configuration service.
type FeeConfigRepo struct {
	pool Pool
}

func NewFeeConfigRepo(pool Pool) *FeeConfigRepo {
	return &FeeConfigRepo{pool: pool}
}

// Get returns nil, nil when the row has not been provisioned yet.
func (r *FeeConfigRepo) Get(ctx context.Context) (*domain.PlatformFeeConfig, error) {
	query := `SELECT bank_code, bank_name, account_number, account_name, fee_percent::text,
		min_deposit, max_deposit, updated_at
		FROM platform_fee_config WHERE id = 1`

	c := &domain.PlatformFeeConfig{}
	var feePercent string
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.BankCode, &c.BankName, &c.AccountNumber, &c.AccountName, &feePercent,
		&c.MinDeposit, &c.MaxDeposit, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform fee config: %w", err)
	}

	if c.FeePercent, err = decimal.NewFromString(feePercent); err != nil {
		return nil, fmt.Errorf("parse fee percent %q: %w", feePercent, err)
	}
	return c, nil
}
