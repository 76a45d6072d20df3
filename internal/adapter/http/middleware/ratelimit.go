package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "deposit-gateway/internal/adapter/storage/redis"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Endpoint groups with their own counters.
const (
	GroupInitiate  = "deposits_initiate"
	GroupCallbacks = "callbacks"
	GroupDefault   = "default"
)

// RateLimitRules builds the per-group limits. Non-positive limits fall back
// to the defaults.
func RateLimitRules(initiatePerMinute, callbackPerMinute int64) map[string]RateLimitRule {
	if initiatePerMinute <= 0 {
		initiatePerMinute = 30
	}
	if callbackPerMinute <= 0 {
		callbackPerMinute = 600
	}
	return map[string]RateLimitRule{
		GroupInitiate:  {Limit: initiatePerMinute, Window: time.Minute},
		GroupCallbacks: {Limit: callbackPerMinute, Window: time.Minute},
		GroupDefault:   {Limit: 120, Window: time.Minute},
	}
}

// RateLimitCounter counts requests in fixed windows.
type RateLimitCounter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Redis errors let the request through.
func RateLimiter(store RateLimitCounter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated callers by account and everyone
// else, gateways included, by client IP.
func extractIdentifier(c *gin.Context) string {
	if r, ok := GetRequester(c); ok && r.Role != "" {
		if r.AccountID != uuid.Nil {
			return "acct:" + r.AccountID.String()
		}
		return "role:" + string(r.Role)
	}
	return "ip:" + c.ClientIP()
}
