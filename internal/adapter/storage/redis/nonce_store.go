package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore burns the nonces of signed internal requests. A nonce is
// scoped to the access key that sent it and lives for ttl, after which the
// timestamp check rejects the request anyway.
type NonceStore struct {
	client *goredis.Client
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet reports whether nonce was unseen for clientID, recording it
// in the same round trip.
func (s *NonceStore) CheckAndSet(ctx context.Context, clientID string, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, key("nonce", clientID, nonce), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("burn nonce: %w", err)
	}
	return fresh, nil
}
