package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"deposit-gateway/pkg/apperror"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	AES           AESConfig           `mapstructure:"aes"`
	Log           LogConfig           `mapstructure:"log"`
	Gateways      GatewaysConfig      `mapstructure:"gateways"`
	Deposit       DepositConfig       `mapstructure:"deposit"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	InternalAuth  InternalAuthConfig  `mapstructure:"internal_auth"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	// LockTimeout bounds row-lock waits inside a transaction; 0 disables it.
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures validation of tokens issued by the authentication layer.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type GatewaysConfig struct {
	VNPay        VNPayConfig        `mapstructure:"vnpay"`
	MoMo         MoMoConfig         `mapstructure:"momo"`
	ZaloPay      ZaloPayConfig      `mapstructure:"zalopay"`
	BankTransfer BankTransferConfig `mapstructure:"bank_transfer"`
}

type VNPayConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	TmnCode     string        `mapstructure:"tmn_code"`
	HashSecret  string        `mapstructure:"hash_secret"`
	PayURL      string        `mapstructure:"pay_url"`
	ReturnURL   string        `mapstructure:"return_url"`
	Version     string        `mapstructure:"version"`
	Locale      string        `mapstructure:"locale"`
	OrderType   string        `mapstructure:"order_type"`
	ExpireAfter time.Duration `mapstructure:"expire_after"`
}

type MoMoConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	PartnerCode string        `mapstructure:"partner_code"`
	AccessKey   string        `mapstructure:"access_key"`
	SecretKey   string        `mapstructure:"secret_key"`
	Endpoint    string        `mapstructure:"endpoint"`
	RedirectURL string        `mapstructure:"redirect_url"`
	IPNURL      string        `mapstructure:"ipn_url"`
	RequestType string        `mapstructure:"request_type"`
	Lang        string        `mapstructure:"lang"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type ZaloPayConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	AppID       string `mapstructure:"app_id"`
	Key1        string `mapstructure:"key1"`
	Key2        string `mapstructure:"key2"`
	Endpoint    string `mapstructure:"endpoint"`
	CallbackURL string `mapstructure:"callback_url"`
	RedirectURL string `mapstructure:"redirect_url"`
}

type BankTransferConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	QRImageBase string `mapstructure:"qr_image_base"`
	QRTemplate  string `mapstructure:"qr_template"`
}

// DepositConfig controls deposit lifetimes and the background sweeper.
type DepositConfig struct {
	PendingTTL    time.Duration `mapstructure:"pending_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	SweepBatch    int           `mapstructure:"sweep_batch"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
	Currency      string        `mapstructure:"currency"`
}

type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type NotificationsConfig struct {
	SigningSecret string `mapstructure:"signing_secret"`
}

// InternalAuthConfig holds the HMAC credentials of the proof-upload collaborator.
type InternalAuthConfig struct {
	AccessKey    string        `mapstructure:"access_key"`
	Secret       string        `mapstructure:"secret"`
	MaxClockSkew time.Duration `mapstructure:"max_clock_skew"`
}

type RateLimitConfig struct {
	InitiatePerMinute int64 `mapstructure:"initiate_per_minute"`
	CallbackPerMinute int64 `mapstructure:"callback_per_minute"`
}

// Load reads configuration from file and environment variables.
// A local .env file is loaded into the environment first when present.
// Environment variables override file values. Prefix: DPG_ (Deposit Gateway).
// Nested keys use underscore: DPG_DATABASE_HOST, DPG_GATEWAYS_VNPAY_HASH_SECRET, etc.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// DPG_GATEWAYS_MOMO_SECRET_KEY -> gateways.momo.secret_key
	v.SetEnvPrefix("DPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "deposit_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.lock_timeout", "5s")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "3s")
	v.SetDefault("redis.read_timeout", "1s")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("gateways.vnpay.enabled", false)
	v.SetDefault("gateways.vnpay.tmn_code", "")
	v.SetDefault("gateways.vnpay.hash_secret", "")
	v.SetDefault("gateways.vnpay.pay_url", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	v.SetDefault("gateways.vnpay.return_url", "")
	v.SetDefault("gateways.vnpay.version", "2.1.0")
	v.SetDefault("gateways.vnpay.locale", "vn")
	v.SetDefault("gateways.vnpay.order_type", "other")
	v.SetDefault("gateways.vnpay.expire_after", "15m")

	v.SetDefault("gateways.momo.enabled", false)
	v.SetDefault("gateways.momo.partner_code", "")
	v.SetDefault("gateways.momo.access_key", "")
	v.SetDefault("gateways.momo.secret_key", "")
	v.SetDefault("gateways.momo.endpoint", "https://test-payment.momo.vn")
	v.SetDefault("gateways.momo.redirect_url", "")
	v.SetDefault("gateways.momo.ipn_url", "")
	v.SetDefault("gateways.momo.request_type", "captureWallet")
	v.SetDefault("gateways.momo.lang", "vi")
	v.SetDefault("gateways.momo.timeout", "30s")

	v.SetDefault("gateways.zalopay.enabled", false)
	v.SetDefault("gateways.zalopay.app_id", "")
	v.SetDefault("gateways.zalopay.key1", "")
	v.SetDefault("gateways.zalopay.key2", "")
	v.SetDefault("gateways.zalopay.endpoint", "https://sb-openapi.zalopay.vn/v2/create")
	v.SetDefault("gateways.zalopay.callback_url", "")
	v.SetDefault("gateways.zalopay.redirect_url", "")

	v.SetDefault("gateways.bank_transfer.enabled", true)
	v.SetDefault("gateways.bank_transfer.qr_image_base", "https://img.vietqr.io/image")
	v.SetDefault("gateways.bank_transfer.qr_template", "compact2")

	v.SetDefault("deposit.pending_ttl", "30m")
	v.SetDefault("deposit.sweep_interval", "1m")
	v.SetDefault("deposit.sweep_batch", 100)
	v.SetDefault("deposit.lock_ttl", "10s")
	v.SetDefault("deposit.currency", "VND")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "deposit.events")
	v.SetDefault("kafka.write_timeout", "10s")

	v.SetDefault("notifications.signing_secret", "")

	v.SetDefault("internal_auth.access_key", "")
	v.SetDefault("internal_auth.secret", "")
	v.SetDefault("internal_auth.max_clock_skew", "5m")

	v.SetDefault("rate_limit.initiate_per_minute", 30)
	v.SetDefault("rate_limit.callback_per_minute", 600)
}

// Validate fails fast on configuration the service cannot run with. Every
// enabled gateway must carry its secrets; a missing one is a CFG_001.
func (c *Config) Validate() error {
	var problems []string
	require := func(ok bool, key string) {
		if !ok {
			problems = append(problems, key+" is required")
		}
	}

	require(c.JWT.Secret != "", "jwt.secret")
	if key, err := hex.DecodeString(c.AES.Key); err != nil || len(key) != 32 {
		problems = append(problems, "aes.key must be 64 hex characters")
	}

	if g := c.Gateways.VNPay; g.Enabled {
		require(g.TmnCode != "", "gateways.vnpay.tmn_code")
		require(g.HashSecret != "", "gateways.vnpay.hash_secret")
		require(g.PayURL != "", "gateways.vnpay.pay_url")
		require(g.ReturnURL != "", "gateways.vnpay.return_url")
	}
	if g := c.Gateways.MoMo; g.Enabled {
		require(g.PartnerCode != "", "gateways.momo.partner_code")
		require(g.AccessKey != "", "gateways.momo.access_key")
		require(g.SecretKey != "", "gateways.momo.secret_key")
		require(g.Endpoint != "", "gateways.momo.endpoint")
		require(g.IPNURL != "", "gateways.momo.ipn_url")
		require(g.RedirectURL != "", "gateways.momo.redirect_url")
	}
	if g := c.Gateways.ZaloPay; g.Enabled {
		require(g.AppID != "", "gateways.zalopay.app_id")
		require(g.Key1 != "", "gateways.zalopay.key1")
		require(g.Key2 != "", "gateways.zalopay.key2")
		require(g.Endpoint != "", "gateways.zalopay.endpoint")
		require(g.CallbackURL != "", "gateways.zalopay.callback_url")
	}

	if c.Deposit.PendingTTL <= 0 {
		problems = append(problems, "deposit.pending_ttl must be positive")
	}
	if c.Deposit.SweepInterval <= 0 {
		problems = append(problems, "deposit.sweep_interval must be positive")
	}

	if c.Kafka.Enabled {
		require(len(c.Kafka.Brokers) > 0, "kafka.brokers")
		require(c.Kafka.Topic != "", "kafka.topic")
		require(c.Notifications.SigningSecret != "", "notifications.signing_secret")
	}
	if c.InternalAuth.AccessKey != "" {
		require(c.InternalAuth.Secret != "", "internal_auth.secret")
	}

	if len(problems) > 0 {
		return apperror.ErrConfiguration("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
