package handler

import (
	"deposit-gateway/internal/adapter/http/dto"
	"deposit-gateway/internal/adapter/http/middleware"
	"deposit-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReconSvc       ports.ReconciliationService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	Internal       middleware.InternalCredentials
	RateLimitStore middleware.RateLimitCounter // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MaxBodyBytes   int64
	OpenAPISpec    []byte
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			deps.Logger.Fatal().Err(err).Msg("binding validators")
		}
	}
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(maxBody))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	swagger := r.Group("/swagger")
	{
		docs := NewDocsHandler(deps.OpenAPISpec)
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.RateLimitRules(0, 0)
	}
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	depositHandler := NewDepositHandler(deps.ReconSvc)
	callbackHandler := NewCallbackHandler(deps.ReconSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.ReconSvc, deps.ReportingSvc)
	walletHandler := NewWalletHandler(deps.ReportingSvc)

	v1 := r.Group("/api/v1")

	// Provider notifications authenticate by their own signatures.
	callbacks := v1.Group("/callbacks", rl(middleware.GroupCallbacks))
	{
		callbacks.GET("/vnpay/ipn", callbackHandler.VNPay)
		callbacks.POST("/momo/ipn", callbackHandler.MoMo)
		callbacks.POST("/zalopay", callbackHandler.ZaloPay)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	deposits := v1.Group("/deposits", jwtAuth)
	{
		deposits.POST("", rl(middleware.GroupInitiate), depositHandler.Initiate)
		deposits.GET("/:id", rl(middleware.GroupDefault), depositHandler.Get)
		deposits.POST("/:id/proof", rl(middleware.GroupDefault), depositHandler.SubmitProof)
	}

	wallets := v1.Group("/wallets", jwtAuth, rl(middleware.GroupDefault))
	{
		wallets.GET("/balance", walletHandler.GetBalance)
		wallets.GET("/ledger", walletHandler.ListLedger)
	}

	admin := v1.Group("/admin/deposits", jwtAuth, middleware.RequireRole(ports.RoleAdmin), rl(middleware.GroupDefault))
	{
		admin.GET("/pending", adminHandler.ListPending)
		admin.GET("/stats", adminHandler.Stats)
		admin.POST("/:id/decision", adminHandler.Decide)
		admin.POST("/:id/retry-credit", adminHandler.RetryCredit)
	}

	internal := r.Group("/internal/v1",
		middleware.InternalAuth(deps.Internal, deps.SigSvc, deps.NonceStore, deps.Logger))
	{
		internal.POST("/deposits/:id/proof", depositHandler.SubmitProof)
	}

	return r
}
