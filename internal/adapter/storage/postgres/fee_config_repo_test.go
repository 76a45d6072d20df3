package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeConfigRow(feePercent string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"bank_code", "bank_name", "account_number", "account_name", "fee_percent",
		"min_deposit", "max_deposit", "updated_at",
	}).AddRow("VCB", "Vietcombank", "0071001234567", "CONG TY DEPOSIT", feePercent,
		int64(10000), int64(50000000), time.Now().UTC())
}

func TestFeeConfigRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM platform_fee_config WHERE id = 1").
		WillReturnRows(feeConfigRow("1.50"))

	cfg, err := NewFeeConfigRepo(mock).Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "VCB", cfg.BankCode)
	assert.True(t, cfg.FeePercent.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, int64(10000), cfg.MinDeposit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeConfigRepo_Get_NotProvisioned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM platform_fee_config").WillReturnError(pgx.ErrNoRows)

	cfg, err := NewFeeConfigRepo(mock).Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestFeeConfigRepo_Get_BadPercent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM platform_fee_config").WillReturnRows(feeConfigRow("n/a"))

	_, err = NewFeeConfigRepo(mock).Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse fee percent")
}
