package redis

import (
	"context"
	"fmt"
	"strings"

	"deposit-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// keyPrefix namespaces every key this service writes.
const keyPrefix = "dpg:"

// key joins parts under the service prefix: key("nonce", "svc", "n1") is
// "dpg:nonce:svc:n1".
func key(parts ...string) string {
	return keyPrefix + strings.Join(parts, ":")
}

// NewClient opens the shared client used by locks, nonces, rate limits and
// the credit cache, then pings once so a bad address fails at startup.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	opts := &goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.ReadTimeout,
	}
	client := goredis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Int("pool_size", opts.PoolSize).
		Msg("redis ready")

	return client, nil
}
