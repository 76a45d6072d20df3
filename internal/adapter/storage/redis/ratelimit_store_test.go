package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimitStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitStore(client), mr
}

func TestRateLimitStore_CountsWithinWindow(t *testing.T) {
	store, _ := newTestRateLimitStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		res, err := store.Allow(ctx, "acct:1:deposits_initiate", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i)
		assert.Equal(t, 3-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "acct:1:deposits_initiate", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.Equal(t, int64(3), res.Limit)

	other, err := store.Allow(ctx, "acct:2:deposits_initiate", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed, "subjects are counted separately")
}

func TestRateLimitStore_WindowKeyExpires(t *testing.T) {
	store, mr := newTestRateLimitStore(t)
	ctx := context.Background()
	subject := "ip:203.0.113.9:callbacks"

	res, err := store.Allow(ctx, subject, 1, time.Minute)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	windowKey := "dpg:ratelimit:" + subject + ":" + strconv.FormatInt(res.ResetAt/60-1, 10)
	require.True(t, mr.Exists(windowKey))
	assert.Equal(t, 61*time.Second, mr.TTL(windowKey))

	res, err = store.Allow(ctx, subject, 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	mr.FastForward(62 * time.Second)
	assert.False(t, mr.Exists(windowKey))
}

func TestRateLimitStore_ResetAtIsWindowEnd(t *testing.T) {
	store, _ := newTestRateLimitStore(t)

	before := time.Now().Unix()
	res, err := store.Allow(context.Background(), "acct:4:default", 10, time.Minute)
	require.NoError(t, err)

	assert.Zero(t, res.ResetAt%60)
	assert.Greater(t, res.ResetAt, before)
	assert.LessOrEqual(t, res.ResetAt, before+60)
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	store, mr := newTestRateLimitStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}
