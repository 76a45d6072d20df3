package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is an account's balance in one currency. The balance is stored
// only as AES-GCM ciphertext and is read back through the encryption
// service; it never leaves the process in the clear except via the
// balance endpoint.
type Wallet struct {
	ID               uuid.UUID `json:"id"`
	AccountID        uuid.UUID `json:"account_id"`
	Currency         string    `json:"currency"`
	EncryptedBalance string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OpenWallet returns the wallet created on an account's first credit in
// currency. encryptedZero is the ciphertext of a zero balance.
func OpenWallet(accountID uuid.UUID, currency, encryptedZero string, now time.Time) *Wallet {
	return &Wallet{
		ID:               uuid.New(),
		AccountID:        accountID,
		Currency:         currency,
		EncryptedBalance: encryptedZero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
