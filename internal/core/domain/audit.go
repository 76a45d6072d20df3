package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names an operator- or provider-visible write.
type AuditAction string

const (
	AuditActionInitiateDeposit  AuditAction = "INITIATE_DEPOSIT"
	AuditActionSubmitProof      AuditAction = "SUBMIT_PROOF"
	AuditActionDecideDeposit    AuditAction = "DECIDE_DEPOSIT"
	AuditActionRetryCredit      AuditAction = "RETRY_CREDIT"
	AuditActionCallbackRejected AuditAction = "CALLBACK_REJECTED"
)

// AuditResource is what ResourceID points at.
type AuditResource string

const (
	// AuditResourceDeposit entries carry a deposit ID.
	AuditResourceDeposit AuditResource = "deposit"
	// AuditResourceCallback entries carry the provider reference from the
	// rejected notification, or nothing when it never verified.
	AuditResourceCallback AuditResource = "callback"
)

// AuditLog is one row of the append-only audit trail. It complements the
// per-deposit transition history with who called what, from where,
// including rejected callbacks that never touched a deposit.
type AuditLog struct {
	ID           uuid.UUID     `json:"id"`
	ActorID      *uuid.UUID    `json:"actor_id,omitempty"`
	Action       AuditAction   `json:"action"`
	ResourceType AuditResource `json:"resource_type"`
	ResourceID   string        `json:"resource_id,omitempty"`
	Details      string        `json:"details,omitempty"` // JSON object
	IPAddress    string        `json:"ip_address"`
	CreatedAt    time.Time     `json:"created_at"`
}
