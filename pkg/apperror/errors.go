package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// IsCode reports whether err (or anything it wraps) is an AppError with the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

const (
	CodeInvalidSignature    = "SEC_002"
	CodeInvalidAmount       = "PAY_002"
	CodeNotFound            = "PAY_004"
	CodeStateConflict       = "DEP_001"
	CodeDepositBusy         = "DEP_002"
	CodeMethodUnavailable   = "DEP_003"
	CodeUpstreamUnavailable = "GW_001"
	CodeUpstreamRejected    = "GW_002"
	CodeConfiguration       = "CFG_001"
)

// ---- Security & Authentication (SEC) ----

func ErrInvalidAccessKey() *AppError {
	return New("SEC_001", "Invalid access key", http.StatusUnauthorized)
}

// ErrInvalidSignature is the SignatureError: a forged, tampered or malformed
// signed payload. It must never lead to a credit.
func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized)
}

// SignatureFailure is ErrInvalidSignature carrying the internal reason for logs.
func SignatureFailure(reason string) *AppError {
	return Wrap(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized, errors.New(reason))
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Payment Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

// ErrAmountOutOfBounds reports a deposit amount outside the platform limits.
func ErrBalanceOverflow() *AppError {
	return New(CodeInvalidAmount, "Credit would overflow the wallet balance", http.StatusUnprocessableEntity)
}

func ErrAmountOutOfBounds(min, max int64) *AppError {
	return New(CodeInvalidAmount, fmt.Sprintf("Amount must be between %d and %d", min, max), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Deposit Reconciliation (DEP) ----

// ErrStateConflict is the StateConflict: an illegal deposit state transition.
func ErrStateConflict(from, to string) *AppError {
	return New(CodeStateConflict, fmt.Sprintf("Deposit cannot move from %s to %s", from, to), http.StatusConflict)
}

// ErrConcurrentUpdate reports a lost optimistic-concurrency race.
func ErrConcurrentUpdate() *AppError {
	return New(CodeStateConflict, "Deposit was modified concurrently", http.StatusConflict)
}

func ErrProofAlreadySubmitted() *AppError {
	return New(CodeStateConflict, "Proof has already been submitted", http.StatusConflict)
}

func ErrDepositBusy() *AppError {
	return New(CodeDepositBusy, "Deposit is being processed by another request", http.StatusConflict)
}

func ErrMethodUnavailable(method string) *AppError {
	return New(CodeMethodUnavailable, fmt.Sprintf("Payment method %s is not available for this operation", method), http.StatusBadRequest)
}

// ---- Gateways (GW) ----

// ErrUpstreamUnavailable means the gateway could not be reached. No state
// was mutated, so the caller may retry initiation.
func ErrUpstreamUnavailable(provider string, err error) *AppError {
	return Wrap(CodeUpstreamUnavailable, fmt.Sprintf("%s gateway unavailable", provider), http.StatusBadGateway, err)
}

func ErrUpstreamRejected(provider string, reason string) *AppError {
	return New(CodeUpstreamRejected, fmt.Sprintf("%s gateway rejected the order: %s", provider, reason), http.StatusBadGateway)
}

// ---- Configuration (CFG) ----

func ErrConfiguration(message string) *AppError {
	return New(CodeConfiguration, message, http.StatusInternalServerError)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Insufficient permissions", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Request (REQ) ----

func ErrPayloadTooLarge() *AppError {
	return New("REQ_001", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// ErrReplayGuardUnavailable is returned when signed requests cannot be
// checked for replay.
func ErrReplayGuardUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Replay protection unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
