package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deposit-gateway/config"
	"deposit-gateway/internal/adapter/gateway"
	httpHandler "deposit-gateway/internal/adapter/http/handler"
	"deposit-gateway/internal/adapter/http/middleware"
	"deposit-gateway/internal/adapter/messaging/kafka"
	pgStorage "deposit-gateway/internal/adapter/storage/postgres"
	redisStorage "deposit-gateway/internal/adapter/storage/redis"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/service"
	"deposit-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Deposit Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	depositRepo := pgStorage.NewDepositRepo(pool)
	transitionRepo := pgStorage.NewTransitionRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	feeRepo := pgStorage.NewFeeConfigRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool, cfg.Database.LockTimeout)

	// Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	depositLock := redisStorage.NewDepositLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	registry, err := gateway.Build(cfg.Gateways, feeRepo, &http.Client{Timeout: 15 * time.Second}, logger.Component(log, "gateway"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize payment gateways")
	}
	log.Info().Interface("methods", registry.Methods()).Msg("Payment gateways ready")

	healthCheckers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}

	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(cfg.Kafka, logger.Component(log, "kafka"))
		healthCheckers = append(healthCheckers, kafka.NewHealthCheck(cfg.Kafka.Brokers))
	} else {
		log.Warn().Msg("Kafka disabled, deposit events will not be published")
	}

	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))
	notifier := service.NewNotificationService(publisher, sigSvc, cfg.Notifications.SigningSecret, logger.Component(log, "notifications"))
	ledgerSvc := service.NewLedgerService(ledgerRepo, walletRepo, feeRepo, idempotencyCache, encSvc, transactor, logger.Component(log, "ledger"))
	reconSvc := service.NewReconciliationService(service.ReconciliationDeps{
		Deposits:    depositRepo,
		Transitions: transitionRepo,
		FeeConfig:   feeRepo,
		Gateways:    registry,
		Ledger:      ledgerSvc,
		Locker:      depositLock,
		Notifier:    notifier,
		Audit:       auditSvc,
		Transactor:  transactor,
	}, service.ReconciliationConfig{
		PendingTTL: cfg.Deposit.PendingTTL,
		LockTTL:    cfg.Deposit.LockTTL,
		Currency:   cfg.Deposit.Currency,
	}, logger.Component(log, "reconciliation"))
	reportingSvc := service.NewReportingService(depositRepo, ledgerRepo, walletRepo, encSvc, cfg.Deposit.Currency)

	sweeper := service.NewExpirySweeper(depositRepo, reconSvc, cfg.Deposit.SweepInterval, cfg.Deposit.SweepBatch, logger.Component(log, "sweeper"))
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sweeper.Run(ctx)
	}()

	openAPISpec, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReconSvc:     reconSvc,
		ReportingSvc: reportingSvc,
		TokenSvc:     tokenSvc,
		SigSvc:       sigSvc,
		NonceStore:   nonceStore,
		Internal: middleware.InternalCredentials{
			AccessKey:    cfg.InternalAuth.AccessKey,
			Secret:       cfg.InternalAuth.Secret,
			MaxClockSkew: cfg.InternalAuth.MaxClockSkew,
		},
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit.InitiatePerMinute, cfg.RateLimit.CallbackPerMinute),
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		OpenAPISpec:    openAPISpec,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-sweeperDone
	auditSvc.Wait()
	notifier.Close()
	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}

	log.Info().Msg("Server exited")
}
