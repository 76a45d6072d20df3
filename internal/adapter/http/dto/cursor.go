package dto

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
)

// EncodeReviewCursor renders a review-queue position as an opaque token.
// A nil cursor encodes to the empty string.
func EncodeReviewCursor(c *ports.ReviewCursor) string {
	if c == nil {
		return ""
	}
	raw := strconv.FormatInt(c.UpdatedAt.UnixNano(), 10) + "." + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeReviewCursor parses a token from EncodeReviewCursor. The empty
// string is the start of the queue.
func DecodeReviewCursor(token string) (*ports.ReviewCursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, apperror.Validation("invalid cursor")
	}
	nanos, id, ok := strings.Cut(string(raw), ".")
	if !ok {
		return nil, apperror.Validation("invalid cursor")
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return nil, apperror.Validation("invalid cursor")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.Validation("invalid cursor")
	}
	return &ports.ReviewCursor{UpdatedAt: time.Unix(0, n).UTC(), ID: parsed}, nil
}
