package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a deposit lifecycle event sent to the notification service.
type EventType string

const (
	EventDepositInitiated      EventType = "DEPOSIT_INITIATED"
	EventDepositProofSubmitted EventType = "DEPOSIT_PROOF_SUBMITTED"
	EventDepositApproved       EventType = "DEPOSIT_APPROVED"
	EventDepositRejected       EventType = "DEPOSIT_REJECTED"
	EventDepositExpired        EventType = "DEPOSIT_EXPIRED"
)

// DepositEvent is the payload published for every committed state change.
type DepositEvent struct {
	EventID         uuid.UUID     `json:"event_id"`
	Type            EventType     `json:"type"`
	DepositID       uuid.UUID     `json:"deposit_id"`
	OwnerID         uuid.UUID     `json:"owner_id"`
	Method          PaymentMethod `json:"method"`
	State           DepositState  `json:"state"`
	RequestedAmount int64         `json:"requested_amount"`
	ApprovedAmount  *int64        `json:"approved_amount,omitempty"`
	NetCredited     *int64        `json:"net_credited,omitempty"`
	Reason          *string       `json:"reason,omitempty"`
	OccurredAt      time.Time     `json:"occurred_at"`
}

// EventForState maps a deposit's current state to the event announcing it.
func EventForState(s DepositState) (EventType, bool) {
	switch s {
	case StateCreated:
		return EventDepositInitiated, true
	case StateUnderReview, StateProofPending:
		return EventDepositProofSubmitted, true
	case StateApproved:
		return EventDepositApproved, true
	case StateRejected:
		return EventDepositRejected, true
	case StateExpired:
		return EventDepositExpired, true
	}
	return "", false
}

// NewDepositEvent snapshots a deposit into an event.
func NewDepositEvent(d *Deposit, now time.Time) (*DepositEvent, bool) {
	t, ok := EventForState(d.State)
	if !ok {
		return nil, false
	}
	return &DepositEvent{
		EventID:         uuid.New(),
		Type:            t,
		DepositID:       d.ID,
		OwnerID:         d.OwnerID,
		Method:          d.Method,
		State:           d.State,
		RequestedAmount: d.RequestedAmount,
		ApprovedAmount:  d.ApprovedAmount,
		Reason:          d.RejectReason,
		OccurredAt:      now,
	}, true
}
