package domain

import (
	"math"
	"time"

	"deposit-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest amount a deposit may carry. VNPay sends amounts
// in hundredths, so anything larger would not fit an int64 on the wire.
const MaxAmount int64 = math.MaxInt64 / 100

// ValidAmount reports whether amount is in (0, MaxAmount].
func ValidAmount(amount int64) bool {
	return amount > 0 && amount <= MaxAmount
}

// PlatformFeeConfig is owned by the admin-configuration service. This
// service only reads it.
type PlatformFeeConfig struct {
	BankCode      string          `json:"bank_code"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	FeePercent    decimal.Decimal `json:"fee_percent"`
	MinDeposit    int64           `json:"min_deposit"`
	MaxDeposit    int64           `json:"max_deposit"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Fee is floor(amount * FeePercent / 100), clamped to [0, amount].
func (c *PlatformFeeConfig) Fee(amount int64) int64 {
	if amount <= 0 || c.FeePercent.IsNegative() {
		return 0
	}
	fee := decimal.NewFromInt(amount).Mul(c.FeePercent).Div(hundred).Floor().IntPart()
	if fee > amount {
		return amount
	}
	return fee
}

// CheckAmount enforces the deposit bounds. A zero MaxDeposit leaves only
// the MaxAmount ceiling.
func (c *PlatformFeeConfig) CheckAmount(amount int64) error {
	if !ValidAmount(amount) {
		return apperror.ErrInvalidAmount()
	}
	if amount < c.MinDeposit || (c.MaxDeposit > 0 && amount > c.MaxDeposit) {
		return apperror.ErrAmountOutOfBounds(c.MinDeposit, c.MaxDeposit)
	}
	return nil
}
