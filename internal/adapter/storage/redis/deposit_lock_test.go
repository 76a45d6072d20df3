package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositLock_ExclusiveUntilUnlocked(t *testing.T) {
	s := miniredis.RunT(t)
	lock := NewDepositLock(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	id := uuid.New()

	token, ok, err := lock.TryLock(ctx, id, 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = lock.TryLock(ctx, id, 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	require.NoError(t, lock.Unlock(ctx, id, token))

	_, ok, err = lock.TryLock(ctx, id, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "lock is free after unlock")
}

func TestDepositLock_DistinctDeposits(t *testing.T) {
	s := miniredis.RunT(t)
	lock := NewDepositLock(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	_, ok1, err := lock.TryLock(ctx, uuid.New(), time.Second)
	require.NoError(t, err)
	_, ok2, err := lock.TryLock(ctx, uuid.New(), time.Second)
	require.NoError(t, err)
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestDepositLock_StaleTokenCannotRelease(t *testing.T) {
	s := miniredis.RunT(t)
	lock := NewDepositLock(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	id := uuid.New()

	stale, ok, err := lock.TryLock(ctx, id, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	current, ok, err := lock.TryLock(ctx, id, 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok, "expired lease can be retaken")

	require.NoError(t, lock.Unlock(ctx, id, stale))
	got, err := s.Get(keyPrefix + "lock:deposit:" + id.String())
	require.NoError(t, err)
	assert.Equal(t, current, got, "stale holder must not release the new lease")
}

func TestDepositLock_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	lock := NewDepositLock(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	s.Close()

	_, ok, err := lock.TryLock(context.Background(), uuid.New(), time.Second)
	assert.Error(t, err)
	assert.False(t, ok)
}
