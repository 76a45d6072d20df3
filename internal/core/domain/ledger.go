package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryType classifies ledger movements.
type LedgerEntryType string

const (
	LedgerEntryDepositCredit LedgerEntryType = "DEPOSIT_CREDIT"
)

// LedgerEntry is an append-only wallet movement. IdempotencyKey is unique,
// so a deposit can be credited at most once.
type LedgerEntry struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"account_id"`
	WalletID       uuid.UUID       `json:"wallet_id"`
	DepositID      uuid.UUID       `json:"deposit_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	EntryType      LedgerEntryType `json:"entry_type"`
	GrossAmount    int64           `json:"gross_amount"`
	FeeAmount      int64           `json:"fee_amount"`
	NetAmount      int64           `json:"net_amount"`
	BalanceAfter   int64           `json:"balance_after"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreditRequest asks the ledger to credit an account once per key.
type CreditRequest struct {
	AccountID      uuid.UUID
	Amount         int64
	Currency       string
	IdempotencyKey string
	DepositID      uuid.UUID
}

// CreditKey is the idempotency key under which a deposit is credited.
func CreditKey(depositID uuid.UUID) string {
	return depositID.String()
}
