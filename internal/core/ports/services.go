package ports

import (
	"context"
	"time"

	"deposit-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService signs requests from internal collaborators and the
// events this service publishes (HMAC-SHA256).
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// Role is the caller role carried in access tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin"
	// RoleService marks a request from an HMAC-authenticated internal collaborator.
	RoleService Role = "service"
)

// TokenService validates JWTs issued by the authentication layer.
type TokenService interface {
	Generate(accountID uuid.UUID, role Role, ttl time.Duration) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Role      Role
}

// Requester identifies who is calling a deposit operation.
type Requester struct {
	AccountID uuid.UUID
	Role      Role
}

// CanActOn reports whether the requester may act on a deposit owned by ownerID.
func (r Requester) CanActOn(ownerID uuid.UUID) bool {
	return r.Role == RoleAdmin || r.Role == RoleService || r.AccountID == ownerID
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached value or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, clientID string, nonce string, ttl time.Duration) (bool, error)
}

// DepositLocker is a short-lived mutual-exclusion lock keyed by deposit.
type DepositLocker interface {
	// TryLock returns a release token and true when the lock was taken.
	TryLock(ctx context.Context, depositID uuid.UUID, ttl time.Duration) (string, bool, error)
	// Unlock releases the lock only if token still owns it.
	Unlock(ctx context.Context, depositID uuid.UUID, token string) error
}

// EventPublisher delivers messages to the notification fan-out.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte, headers map[string]string) error
	Close() error
}

// --- Gateways ---

// InitiateRequest is what an adapter needs to build a payment descriptor.
type InitiateRequest struct {
	DepositID         uuid.UUID
	AccountID         uuid.UUID
	Amount            int64
	ProviderReference string
	ReturnTarget      string
	ClientIP          string
	Description       string
	CreatedAt         time.Time
	ExpiresAt         time.Time
}

// GatewayAdapter speaks one provider's protocol: it builds outbound payment
// descriptors and verifies inbound callbacks.
type GatewayAdapter interface {
	Method() domain.PaymentMethod
	Initiate(ctx context.Context, req InitiateRequest) (*domain.PaymentDescriptor, error)
	// VerifyCallback fails closed: any mismatch or malformed input is a SEC_002.
	VerifyCallback(ctx context.Context, raw []byte) (*domain.VerifiedPayment, error)
	// Acknowledge renders the provider-specific reply to a callback.
	Acknowledge(ack domain.CallbackAck) (int, any)
}

// GatewayRegistry resolves the adapter for a payment method.
type GatewayRegistry interface {
	Adapter(method domain.PaymentMethod) (GatewayAdapter, error)
	Methods() []domain.PaymentMethod
}

// --- Service Ports (Business Logic) ---

// LedgerService credits wallets exactly once per idempotency key.
type LedgerService interface {
	// Credit runs inside the caller's transaction.
	Credit(ctx context.Context, tx pgx.Tx, req domain.CreditRequest) (*domain.LedgerEntry, error)
	// CreditStandalone runs Credit in its own transaction; it is the recovery path.
	CreditStandalone(ctx context.Context, req domain.CreditRequest) (*domain.LedgerEntry, error)
}

// ReconciliationService orchestrates deposits across gateways, admin review and the ledger.
type ReconciliationService interface {
	InitiateDeposit(ctx context.Context, req InitiateDepositRequest) (*DepositInitiation, error)
	HandleCallback(ctx context.Context, req CallbackRequest) (*CallbackResult, error)
	SubmitProof(ctx context.Context, depositID uuid.UUID, requester Requester, proofReference string) (*domain.Deposit, error)
	ListPendingReview(ctx context.Context, query PendingReviewQuery) (*PendingReviewPage, error)
	Decide(ctx context.Context, req DecisionRequest) (*DecisionResult, error)
	GetDeposit(ctx context.Context, id uuid.UUID, requester Requester) (*DepositDetails, error)
	RetryCredit(ctx context.Context, depositID uuid.UUID) (*domain.LedgerEntry, error)
	ExpireDeposit(ctx context.Context, depositID uuid.UUID) (*domain.Deposit, error)
}

// InitiateDepositRequest holds validated input for starting a deposit.
type InitiateDepositRequest struct {
	AccountID    uuid.UUID
	Amount       int64
	Method       domain.PaymentMethod
	ReturnTarget string
	ClientIP     string
}

// DepositInitiation is the created deposit plus how to pay it.
type DepositInitiation struct {
	Deposit    *domain.Deposit           `json:"deposit"`
	Descriptor *domain.PaymentDescriptor `json:"payment"`
}

// CallbackRequest carries a raw provider notification.
type CallbackRequest struct {
	Method   domain.PaymentMethod
	Payload  []byte
	RemoteIP string
}

// CallbackResult is the outcome of a callback plus the reply the provider expects.
type CallbackResult struct {
	Outcome   domain.CallbackOutcome
	Ack       domain.CallbackAck
	DepositID *uuid.UUID
	State     domain.DepositState
	// AckStatus and AckBody are the provider-specific HTTP reply.
	AckStatus int
	AckBody   any
}

// PendingReviewQuery asks for one page of the review queue.
type PendingReviewQuery struct {
	After *ReviewCursor
	Limit int
}

// PendingReviewPage is one page of the review queue. Next is nil on the last page.
type PendingReviewPage struct {
	Deposits []domain.Deposit
	Next     *ReviewCursor
}

// DecisionOutcome is an admin's verdict.
type DecisionOutcome string

const (
	DecisionApprove DecisionOutcome = "APPROVE"
	DecisionReject  DecisionOutcome = "REJECT"
)

// DecisionRequest holds an admin decision. Amount applies to APPROVE,
// Reason to REJECT.
type DecisionRequest struct {
	DepositID uuid.UUID
	AdminID   uuid.UUID
	Outcome   DecisionOutcome
	Amount    int64
	Reason    string
}

// DecisionResult is the decided deposit, its ledger entry when approved,
// and the recorded amount mismatch if any.
type DecisionResult struct {
	Deposit  *domain.Deposit        `json:"deposit"`
	Entry    *domain.LedgerEntry    `json:"ledger_entry,omitempty"`
	Mismatch *domain.AmountMismatch `json:"amount_mismatch,omitempty"`
}

// DepositDetails is a deposit with its state history.
type DepositDetails struct {
	Deposit     *domain.Deposit            `json:"deposit"`
	Transitions []domain.DepositTransition `json:"transitions"`
}

// NotificationService announces committed deposit changes. Delivery is
// best effort and never fails the caller.
type NotificationService interface {
	DepositChanged(ctx context.Context, deposit *domain.Deposit, entry *domain.LedgerEntry)
}

// ReportingService defines wallet and admin reporting.
type ReportingService interface {
	GetWalletBalance(ctx context.Context, accountID uuid.UUID) (*WalletBalance, error)
	ListLedger(ctx context.Context, params LedgerListParams) ([]domain.LedgerEntry, int64, error)
	GetDepositStats(ctx context.Context, period string) (*DepositStats, error)
}

// WalletBalance is a decrypted wallet balance.
type WalletBalance struct {
	AccountID uuid.UUID `json:"account_id"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency"`
}

// AuditService records audit entries without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
