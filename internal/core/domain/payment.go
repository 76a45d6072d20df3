package domain

import (
	"time"

	"github.com/google/uuid"
)

// DescriptorKind says how the client completes a payment.
type DescriptorKind string

const (
	DescriptorRedirect     DescriptorKind = "REDIRECT"
	DescriptorBankTransfer DescriptorKind = "BANK_TRANSFER"
)

// PaymentDescriptor is what a gateway adapter hands back to the payer:
// a redirect target for automated gateways or transfer instructions for
// a manual bank transfer.
type PaymentDescriptor struct {
	Kind         DescriptorKind           `json:"kind"`
	Method       PaymentMethod            `json:"method"`
	RedirectURL  string                   `json:"redirect_url,omitempty"`
	Deeplink     string                   `json:"deeplink,omitempty"`
	QRCodeURL    string                   `json:"qr_code_url,omitempty"`
	Fields       map[string]string        `json:"fields,omitempty"`
	BankTransfer *BankTransferInstruction `json:"bank_transfer,omitempty"`
	ExpiresAt    *time.Time               `json:"expires_at,omitempty"`
}

// BankTransferInstruction is the static instruction shown for manual deposits.
type BankTransferInstruction struct {
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Memo          string `json:"memo"`
	QRImageURL    string `json:"qr_image_url"`
}

// BankTransferMemo is the transfer note that lets an admin match a bank
// statement line to a deposit.
func BankTransferMemo(depositID uuid.UUID) string {
	return "DEPOSIT " + depositID.String()
}

// VerifiedPayment is the content of a callback whose signature checked out.
type VerifiedPayment struct {
	Method               PaymentMethod `json:"method"`
	ProviderReference    string        `json:"provider_reference"`
	Amount               int64         `json:"amount"`
	Success              bool          `json:"success"`
	ResultCode           string        `json:"result_code"`
	Message              string        `json:"message,omitempty"`
	GatewayTransactionID string        `json:"gateway_transaction_id,omitempty"`
}

// CallbackOutcome summarizes what a callback did to its deposit.
type CallbackOutcome string

const (
	// CallbackAccepted: verified and applied; the deposit settled.
	CallbackAccepted CallbackOutcome = "ACCEPTED"
	// CallbackRejected: not applied (bad signature, unknown deposit, amount mismatch, conflict).
	CallbackRejected CallbackOutcome = "REJECTED"
	// CallbackDuplicate: the deposit had already settled; nothing changed.
	CallbackDuplicate CallbackOutcome = "DUPLICATE"
)

// CallbackAck selects the provider-specific acknowledgement to send back.
type CallbackAck string

const (
	AckOK               CallbackAck = "OK"
	AckInvalidSignature CallbackAck = "INVALID_SIGNATURE"
	AckNotFound         CallbackAck = "NOT_FOUND"
	AckAlreadyConfirmed CallbackAck = "ALREADY_CONFIRMED"
	AckInvalidAmount    CallbackAck = "INVALID_AMOUNT"
	AckRetry            CallbackAck = "RETRY"
)
