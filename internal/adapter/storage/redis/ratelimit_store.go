package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// windowScript counts a hit and arms the TTL on the first hit of a window in
// one atomic step, so a counter can never outlive its window.
var windowScript = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimitStore keeps fixed-window request counters for the HTTP rate
// limiter. Windows are aligned to the unix epoch.
type RateLimitStore struct {
	client *goredis.Client
}

func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// RateLimitResult is the limiter's view of one counted request.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // unix seconds
}

// Allow counts one request for subject in the current window.
func (s *RateLimitStore) Allow(ctx context.Context, subject string, limit int64, window time.Duration) (*RateLimitResult, error) {
	span := max(int64(window/time.Second), 1)
	windowID := time.Now().Unix() / span

	// One extra second of TTL absorbs clock skew between app and Redis.
	ttl := (time.Duration(span)*time.Second + time.Second).Milliseconds()
	count, err := windowScript.Run(ctx, s.client,
		[]string{key("ratelimit", subject, strconv.FormatInt(windowID, 10))}, ttl,
	).Int64()
	if err != nil {
		return nil, fmt.Errorf("count request for %s: %w", subject, err)
	}

	return &RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   (windowID + 1) * span,
	}, nil
}
