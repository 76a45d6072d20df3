package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	goredis "github.com/redis/go-redis/v9"
)

// unlockScript deletes the key only while it still holds the caller's token,
// so a holder whose lease expired cannot release its successor's lock.
var unlockScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DepositLock implements ports.DepositLocker with SET NX PX.
type DepositLock struct {
	client *goredis.Client
	prefix string
}

// NewDepositLock creates a Redis-backed per-deposit lock.
func NewDepositLock(client *goredis.Client) *DepositLock {
	return &DepositLock{
		client: client,
		prefix: keyPrefix + "lock:deposit:",
	}
}

// TryLock takes the lock for ttl without waiting. ok is false when another
// holder has it.
func (l *DepositLock) TryLock(ctx context.Context, depositID uuid.UUID, ttl time.Duration) (string, bool, error) {
	token := ulid.Make().String()
	res, err := l.client.SetArgs(ctx, l.prefix+depositID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis deposit lock: %w", err)
	}
	return token, res == "OK", nil
}

// Unlock releases the lock if token still owns it. Releasing a lock that
// expired or moved to another holder is not an error.
func (l *DepositLock) Unlock(ctx context.Context, depositID uuid.UUID, token string) error {
	if err := unlockScript.Run(ctx, l.client, []string{l.prefix + depositID.String()}, token).Err(); err != nil {
		return fmt.Errorf("redis deposit unlock: %w", err)
	}
	return nil
}
