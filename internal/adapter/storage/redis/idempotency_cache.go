package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache holds committed ledger credits by idempotency key so a
// redelivered callback can short-circuit before opening a transaction. The
// ledger table's unique key stays authoritative; a miss here is never an
// answer on its own.
type IdempotencyCache struct {
	client *goredis.Client
}

func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the cached entry, or nil when the key is unknown or expired.
func (c *IdempotencyCache) Get(ctx context.Context, idemKey string) ([]byte, error) {
	val, err := c.client.Get(ctx, key("credit", idemKey)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cached credit: %w", err)
	}
	return val, nil
}

// Set records a credit. A credit never changes once committed, so the first
// write wins and later writes for the same key are dropped.
func (c *IdempotencyCache) Set(ctx context.Context, idemKey string, value []byte, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, key("credit", idemKey), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache credit: %w", err)
	}
	return nil
}
