package redis

import (
	"context"
	"strconv"
	"testing"

	"deposit-gateway/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func miniredisConfig(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port}
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := miniredisConfig(t, s)
	s.Close()

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "dpg:nonce:svc:n1", key("nonce", "svc", "n1"))
	assert.Equal(t, "dpg:credit:abc", key("credit", "abc"))
}

func TestHealthCheck_DownAfterClose(t *testing.T) {
	s := miniredis.RunT(t)
	client, err := NewClient(context.Background(), miniredisConfig(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	s.Close()
	assert.Error(t, NewHealthCheck(client).Ping(context.Background()))
}
