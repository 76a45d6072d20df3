package domain

import (
	"fmt"
	"time"

	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
)

// PaymentMethod is the closed set of supported deposit channels.
type PaymentMethod string

const (
	MethodVNPay        PaymentMethod = "VNPAY"
	MethodMoMo         PaymentMethod = "MOMO"
	MethodZaloPay      PaymentMethod = "ZALOPAY"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// PaymentMethods lists every supported method in display order.
var PaymentMethods = []PaymentMethod{MethodVNPay, MethodMoMo, MethodZaloPay, MethodBankTransfer}

// ParsePaymentMethod validates a method name.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// IsAutomated reports whether the method settles through a signed gateway callback.
func (m PaymentMethod) IsAutomated() bool {
	return m == MethodVNPay || m == MethodMoMo || m == MethodZaloPay
}

// DepositState is the lifecycle state of a deposit.
type DepositState string

const (
	StateCreated      DepositState = "CREATED"
	StateProofPending DepositState = "PROOF_PENDING"
	StateUnderReview  DepositState = "UNDER_REVIEW"
	StateApproved     DepositState = "APPROVED"
	StateRejected     DepositState = "REJECTED"
	StateExpired      DepositState = "EXPIRED"
)

// IsTerminal returns true for states no transition may leave.
func (s DepositState) IsTerminal() bool {
	return s == StateApproved || s == StateRejected || s == StateExpired
}

// Deposit tracks one request to top up an account wallet, from creation
// through gateway callback or admin review to a terminal state.
type Deposit struct {
	ID                   uuid.UUID     `json:"id"`
	OwnerID              uuid.UUID     `json:"owner_id"`
	Method               PaymentMethod `json:"method"`
	State                DepositState  `json:"state"`
	RequestedAmount      int64         `json:"requested_amount"`
	ApprovedAmount       *int64        `json:"approved_amount,omitempty"`
	AmountDelta          *int64        `json:"amount_delta,omitempty"`
	Currency             string        `json:"currency"`
	ProviderReference    string        `json:"provider_reference"`
	GatewayTransactionID *string       `json:"gateway_transaction_id,omitempty"`
	ProofReference       *string       `json:"proof_reference,omitempty"`
	RejectReason         *string       `json:"reject_reason,omitempty"`
	DecidedBy            *uuid.UUID    `json:"decided_by,omitempty"`
	DecidedAt            *time.Time    `json:"decided_at,omitempty"`
	ExpiresAt            time.Time     `json:"expires_at"`
	Version              int64         `json:"version"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// AmountMismatch is recorded when an admin approves an amount different
// from the one requested. It is informational, never an error.
type AmountMismatch struct {
	RequestedAmount int64 `json:"requested_amount"`
	ApprovedAmount  int64 `json:"approved_amount"`
	Delta           int64 `json:"delta"`
}

// NewDeposit builds a deposit in the Created state.
func NewDeposit(ownerID uuid.UUID, method PaymentMethod, amount int64, currency, providerRef string, now time.Time, ttl time.Duration) *Deposit {
	return &Deposit{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Method:            method,
		State:             StateCreated,
		RequestedAmount:   amount,
		Currency:          currency,
		ProviderReference: providerRef,
		ExpiresAt:         now.Add(ttl),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (d *Deposit) conflict(to DepositState) error {
	return apperror.ErrStateConflict(string(d.State), string(to))
}

// AttachProof records the uploaded transfer evidence. Manual deposits only;
// the reference is written once and never overwritten.
func (d *Deposit) AttachProof(ref string, now time.Time) error {
	if d.ProofReference != nil {
		return apperror.ErrProofAlreadySubmitted()
	}
	if d.State != StateCreated || d.Method != MethodBankTransfer {
		return d.conflict(StateProofPending)
	}
	if ref == "" {
		return apperror.Validation("proof reference is required")
	}
	d.ProofReference = &ref
	d.State = StateProofPending
	d.UpdatedAt = now
	return nil
}

// MarkUnderReview lists a proven deposit for admin review.
func (d *Deposit) MarkUnderReview(now time.Time) error {
	if d.State != StateProofPending {
		return d.conflict(StateUnderReview)
	}
	d.State = StateUnderReview
	d.UpdatedAt = now
	return nil
}

// Approve applies an admin approval. Manual deposits must be UnderReview;
// automated deposits still waiting for their callback may be approved from
// Created. The approved amount is the amount of record.
func (d *Deposit) Approve(adminID uuid.UUID, amount int64, now time.Time) (*AmountMismatch, error) {
	if !ValidAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	allowed := d.State == StateUnderReview || (d.State == StateCreated && d.Method.IsAutomated())
	if !allowed {
		return nil, d.conflict(StateApproved)
	}

	var mismatch *AmountMismatch
	if amount != d.RequestedAmount {
		delta := d.RequestedAmount - amount
		mismatch = &AmountMismatch{
			RequestedAmount: d.RequestedAmount,
			ApprovedAmount:  amount,
			Delta:           delta,
		}
		d.AmountDelta = &delta
	}

	d.ApprovedAmount = &amount
	d.State = StateApproved
	d.DecidedBy = &adminID
	decidedAt := now
	d.DecidedAt = &decidedAt
	d.UpdatedAt = now
	return mismatch, nil
}

// Reject applies an admin rejection from UnderReview or Created.
func (d *Deposit) Reject(adminID uuid.UUID, reason string, now time.Time) error {
	if d.State != StateUnderReview && d.State != StateCreated {
		return d.conflict(StateRejected)
	}
	if reason == "" {
		return apperror.Validation("reject reason is required")
	}
	d.State = StateRejected
	d.RejectReason = &reason
	d.DecidedBy = &adminID
	decidedAt := now
	d.DecidedAt = &decidedAt
	d.UpdatedAt = now
	return nil
}

// Settle applies a verified gateway callback: Created -> Approved on a
// successful payment, Created -> Rejected otherwise. Callers check the
// confirmed amount against RequestedAmount before settling.
func (d *Deposit) Settle(p VerifiedPayment, now time.Time) error {
	target := StateRejected
	if p.Success {
		target = StateApproved
	}
	if d.State != StateCreated || !d.Method.IsAutomated() || p.Method != d.Method {
		return d.conflict(target)
	}
	if p.ProviderReference != d.ProviderReference {
		return apperror.SignatureFailure("provider reference does not match deposit")
	}

	if p.GatewayTransactionID != "" {
		txn := p.GatewayTransactionID
		d.GatewayTransactionID = &txn
	}
	if p.Success {
		amount := p.Amount
		d.ApprovedAmount = &amount
	} else {
		reason := fmt.Sprintf("gateway result %s", p.ResultCode)
		if p.Message != "" {
			reason += ": " + p.Message
		}
		d.RejectReason = &reason
	}
	d.State = target
	d.UpdatedAt = now
	return nil
}

// Expire reaps an automated deposit whose callback never arrived.
func (d *Deposit) Expire(now time.Time) error {
	if d.State != StateCreated || !d.Method.IsAutomated() {
		return d.conflict(StateExpired)
	}
	if now.Before(d.ExpiresAt) {
		return d.conflict(StateExpired)
	}
	reason := "payment window elapsed"
	d.State = StateExpired
	d.RejectReason = &reason
	d.UpdatedAt = now
	return nil
}

// Clone returns a deep copy, so a failed transition can be discarded.
func (d *Deposit) Clone() *Deposit {
	c := *d
	c.ApprovedAmount = cloneInt64(d.ApprovedAmount)
	c.AmountDelta = cloneInt64(d.AmountDelta)
	c.GatewayTransactionID = cloneString(d.GatewayTransactionID)
	c.ProofReference = cloneString(d.ProofReference)
	c.RejectReason = cloneString(d.RejectReason)
	if d.DecidedBy != nil {
		v := *d.DecidedBy
		c.DecidedBy = &v
	}
	if d.DecidedAt != nil {
		v := *d.DecidedAt
		c.DecidedAt = &v
	}
	return &c
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
