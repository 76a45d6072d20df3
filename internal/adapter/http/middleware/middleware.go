package middleware

import (
	"bytes"
	"crypto/subtle"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for internal HMAC authentication
	HeaderAccessKey = "X-Access-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
	HeaderRequestID = "X-Request-ID"

	defaultClockSkew = 60 * time.Second

	// Context keys
	CtxAccountID  = "account_id"
	CtxRole       = "role"
	CtxRequester  = "requester"
	CtxRequestID  = "request_id"
	CtxResourceID = "resource_id"
)

// InternalCredentials identifies the single internal collaborator allowed
// to call /internal routes.
type InternalCredentials struct {
	AccessKey    string
	Secret       string
	MaxClockSkew time.Duration
}

// InternalAuth verifies HMAC-SHA256 signed requests from internal services.
// Pipeline: check timestamp -> check access key -> verify signature -> burn nonce.
func InternalAuth(
	creds InternalCredentials,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	skew := creds.MaxClockSkew
	if skew <= 0 {
		skew = defaultClockSkew
	}
	// Nonces must outlive the window in which their timestamp is accepted.
	nonceTTL := 2 * skew

	return func(c *gin.Context) {
		accessKey := c.GetHeader(HeaderAccessKey)
		signature := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if creds.AccessKey == "" || accessKey == "" || signature == "" || timestampStr == "" || nonce == "" {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}

		// Step 1: Timestamp check
		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			abort(c, apperror.ErrTimestampExpired())
			return
		}
		if math.Abs(float64(time.Now().Unix()-timestamp)) > skew.Seconds() {
			abort(c, apperror.ErrTimestampExpired())
			return
		}

		// Step 2: Access key
		if subtle.ConstantTimeCompare([]byte(accessKey), []byte(creds.AccessKey)) != 1 {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}

		// Step 3: Signature verification
		bodyBytes, err := ReadBody(c)
		if err != nil {
			abort(c, err)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		canonical := sigSvc.BuildCanonicalString(
			c.Request.Method,
			c.Request.URL.Path,
			timestamp,
			nonce,
			string(bodyBytes),
		)
		if !sigSvc.Verify(creds.Secret, canonical, signature) {
			log.Warn().Str("path", c.Request.URL.Path).Str("client_ip", c.ClientIP()).Msg("internal request signature mismatch")
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		// Step 4: Nonce, only burned once the signature proves the sender.
		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), accessKey, nonce, nonceTTL)
		if err != nil {
			log.Error().Err(err).Str("access_key", accessKey).Msg("nonce store unavailable, rejecting signed request")
			abort(c, apperror.ErrReplayGuardUnavailable(err))
			return
		}
		if !isNew {
			abort(c, apperror.ErrNonceUsed())
			return
		}

		c.Set(CtxRole, ports.RoleService)
		c.Set(CtxRequester, ports.Requester{Role: ports.RoleService})
		c.Next()
	}
}

// JWTAuth validates bearer tokens issued by the authentication layer.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxAccountID, claims.AccountID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxRequester, ports.Requester{AccountID: claims.AccountID, Role: claims.Role})
		c.Next()
	}
}

// RequireRole admits only requests authenticated with one of roles.
// It must run after JWTAuth or InternalAuth.
func RequireRole(roles ...ports.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		abort(c, apperror.ErrForbidden())
	}
}

// GetRequester returns the authenticated caller set by JWTAuth or InternalAuth.
func GetRequester(c *gin.Context) (ports.Requester, bool) {
	v, ok := c.Get(CtxRequester)
	if !ok {
		return ports.Requester{}, false
	}
	r, ok := v.(ports.Requester)
	return r, ok
}

// RequestID propagates or assigns the X-Request-ID used in every response envelope.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Metrics records request latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
