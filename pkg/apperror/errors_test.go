package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("DEP_001", "Deposit cannot move", http.StatusConflict),
			expected: "[DEP_001] Deposit cannot move",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_002", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("decide: %w", ErrStateConflict("APPROVED", "REJECTED"))

	assert.True(t, IsCode(wrapped, CodeStateConflict))
	assert.False(t, IsCode(wrapped, CodeDepositBusy))
	assert.False(t, IsCode(errors.New("plain"), CodeStateConflict))
	assert.False(t, IsCode(nil, CodeStateConflict))
}

func TestSecurityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAccessKey", ErrInvalidAccessKey(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(), "SEC_002", 401},
		{"SignatureFailure", SignatureFailure("digest mismatch"), "SEC_002", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_003", 403},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSignatureFailure_HidesReason(t *testing.T) {
	err := SignatureFailure("vnp_SecureHash mismatch")
	assert.Equal(t, "Invalid signature", err.Message)
	assert.Contains(t, err.Error(), "vnp_SecureHash mismatch")
}

func TestDepositErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"StateConflict", ErrStateConflict("APPROVED", "REJECTED"), "DEP_001", 409},
		{"ConcurrentUpdate", ErrConcurrentUpdate(), "DEP_001", 409},
		{"ProofAlreadySubmitted", ErrProofAlreadySubmitted(), "DEP_001", 409},
		{"DepositBusy", ErrDepositBusy(), "DEP_002", 409},
		{"MethodUnavailable", ErrMethodUnavailable("BANK_TRANSFER"), "DEP_003", 400},
		{"InvalidAmount", ErrInvalidAmount(), "PAY_002", 400},
		{"AmountOutOfBounds", ErrAmountOutOfBounds(10000, 50000000), "PAY_002", 400},
		{"NotFound", ErrNotFound("Deposit"), "PAY_004", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestGatewayErrors(t *testing.T) {
	inner := fmt.Errorf("dial tcp: i/o timeout")
	unavailable := ErrUpstreamUnavailable("MOMO", inner)
	assert.Equal(t, "GW_001", unavailable.Code)
	assert.Equal(t, 502, unavailable.HTTPStatus)
	assert.True(t, errors.Is(unavailable, inner))

	rejected := ErrUpstreamRejected("MOMO", "resultCode=22")
	assert.Equal(t, "GW_002", rejected.Code)
	assert.Contains(t, rejected.Message, "resultCode=22")
}

func TestAuthErrors(t *testing.T) {
	assert.Equal(t, "AUTH_003", ErrInvalidToken().Code)
	assert.Equal(t, 401, ErrInvalidToken().HTTPStatus)
	assert.Equal(t, "AUTH_005", ErrForbidden().Code)
	assert.Equal(t, 403, ErrForbidden().HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, 500, internal.HTTPStatus)
	assert.True(t, errors.Is(internal, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)

	cfgErr := ErrConfiguration("gateways.vnpay.hash_secret is required")
	assert.Equal(t, "CFG_001", cfgErr.Code)
	assert.Equal(t, 500, cfgErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
