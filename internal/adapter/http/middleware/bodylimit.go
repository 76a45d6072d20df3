package middleware

import (
	"errors"
	"io"
	"net/http"

	"deposit-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body. Declared oversize bodies are refused
// up front; undeclared ones fail on read (see ReadBody).
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			abort(c, apperror.ErrPayloadTooLarge())
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// ReadBody reads the whole request body, mapping an exceeded limit to REQ_001.
func ReadBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.ErrPayloadTooLarge()
		}
		return nil, apperror.Validation("cannot read request body")
	}
	return b, nil
}
