package service

import (
	"strconv"

	"deposit-gateway/pkg/hmacsig"
)

// HMACSignatureService implements ports.SignatureService with HMAC-SHA256.
// It signs requests from internal collaborators and the deposit events
// published to the notification service.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	return hmacsig.Sign(hmacsig.HMACSHA256, secretKey, payload)
}

// Verify compares in constant time. An empty key or signature never verifies.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	return hmacsig.Verify(hmacsig.HMACSHA256, secretKey, payload, signature)
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD|PATH|TIMESTAMP|NONCE|BODY
func (s *HMACSignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string {
	return hmacsig.JoinFields("|", method, path, strconv.FormatInt(timestamp, 10), nonce, body)
}
