package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*IdempotencyCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	return NewIdempotencyCache(goredis.NewClient(&goredis.Options{Addr: s.Addr()})), s
}

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	cache, s := newTestCache(t)
	ctx := context.Background()

	creditKey := "deposit:6f1c2f43-7a4e-4b8e-9a52-2f0d8c1e3b77:credit"
	value := []byte(`{"id":"abc","net_amount":98500}`)

	result, err := cache.Get(ctx, creditKey)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, creditKey, value, 24*time.Hour))

	result, err = cache.Get(ctx, creditKey)
	require.NoError(t, err)
	assert.Equal(t, value, result)
	assert.True(t, s.Exists("dpg:credit:"+creditKey))
}

func TestIdempotencyCache_FirstWriteWins(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte(`{"net_amount":98500}`), time.Hour))
	require.NoError(t, cache.Set(ctx, "k", []byte(`{"net_amount":1}`), time.Hour))

	result, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"net_amount":98500}`, string(result))
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	cache, s := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "deposit-2", []byte(`{"data":"test"}`), time.Second))
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "deposit-2")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestIdempotencyCache_RedisDown(t *testing.T) {
	cache, s := newTestCache(t)
	s.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))
}
