package response

import (
	"errors"
	"net/http"
	"time"

	"deposit-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey matches the gin context key the RequestID middleware sets.
const requestIDKey = "request_id"

// Meta is stamped on every envelope so clients can quote a request ID
// when disputing a deposit.
type Meta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data any `json:"data"`
	Meta
}

// PageResponse is the success envelope for keyset-paginated listings.
// NextCursor is empty when the listing is exhausted.
type PageResponse struct {
	Data       any    `json:"data"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
	Meta
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Meta
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta(c)})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Data: data, Meta: meta(c)})
}

// Page sends one page of a keyset-paginated listing.
func Page(c *gin.Context, data any, nextCursor string) {
	c.JSON(http.StatusOK, PageResponse{
		Data:       data,
		NextCursor: nextCursor,
		HasMore:    nextCursor != "",
		Meta:       meta(c),
	})
}

// Error writes err as an error envelope. Errors that are not an
// *apperror.AppError anywhere in their chain become SYS_001, and their
// text is never sent to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Meta:      meta(c),
	})
}

// meta reads the request ID set by middleware, minting one for handlers
// that run outside the normal chain.
func meta(c *gin.Context) Meta {
	id := c.GetString(requestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return Meta{RequestID: id, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}
