package handler

import (
	"net/http"

	"github.com/Player1Taco/Liquid-Flow/internal/adapter/http/middleware"
	redisStore "github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/redis"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	AuctionSvc     ports.AuctionService
	RegistrySvc    ports.RegistryService
	TokenSvc       ports.TokenService
	EventArchive   ports.EventArchive         // nil = event replay disabled
	EventStream    http.HandlerFunc           // nil = websocket feed disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	OwnerAddress   domain.Address
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Operator auth ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Ledger (strategy capital) ---
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	strategies := v1.Group("/strategies")
	{
		strategies.POST("", rl("strategies"), ledgerHandler.Ship)
		strategies.GET("/:hash", ledgerHandler.GetStrategy)
		strategies.GET("/:hash/balances/:token", ledgerHandler.GetBalance)
		strategies.GET("/:hash/withdrawal", ledgerHandler.GetWithdrawalRequest)
		strategies.POST("/:hash/dock-request", rl("strategies"), ledgerHandler.RequestDock)
		strategies.POST("/:hash/dock", rl("strategies"), ledgerHandler.ExecuteDock)
		strategies.POST("/:hash/emergency-dock", rl("strategies"), ledgerHandler.EmergencyDock)
	}

	// --- Auction (intents, batches, solutions) ---
	auctionHandler := NewAuctionHandler(deps.AuctionSvc)
	intents := v1.Group("/intents")
	{
		intents.POST("", rl("intents"), auctionHandler.SubmitIntent)
		intents.POST("/commit", rl("intents"), auctionHandler.CommitIntent)
		intents.POST("/:id/reveal", rl("intents"), auctionHandler.RevealIntent)
		intents.POST("/:id/cancel", rl("intents"), auctionHandler.CancelIntent)
		intents.GET("/:id", auctionHandler.GetIntent)
	}

	batches := v1.Group("/batches")
	{
		batches.GET("/current", auctionHandler.GetCurrentBatch)
		batches.GET("/:id", auctionHandler.GetBatch)
		batches.GET("/:id/intents", auctionHandler.GetBatchIntents)
		batches.POST("/close", auctionHandler.CloseBatch)
		batches.POST("/execute", auctionHandler.ExecuteBatch)
		batches.POST("/cancel", auctionHandler.CancelBatch)
	}

	solutions := v1.Group("/solutions")
	{
		solutions.POST("", rl("solutions"), auctionHandler.SubmitSolution)
		solutions.GET("/:hash", auctionHandler.GetSolution)
	}

	// --- Registry (solver stake & reputation) ---
	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	solvers := v1.Group("/solvers")
	{
		solvers.POST("", rl("solvers"), registryHandler.Register)
		solvers.POST("/unregister", rl("solvers"), registryHandler.Unregister)
		solvers.POST("/stake/increase", rl("solvers"), registryHandler.IncreaseStake)
		solvers.POST("/stake/decrease", rl("solvers"), registryHandler.DecreaseStake)
		solvers.POST("/reputation", registryHandler.UpdateReputation)
		solvers.POST("/slash", registryHandler.Slash)
		solvers.GET("/slashes/count", registryHandler.GetSlashCount)
		solvers.GET("/:address", registryHandler.GetSolver)
		solvers.GET("/:address/reputation", registryHandler.GetReputation)
	}

	// --- Events (archive replay + live stream) ---
	events := v1.Group("/events")
	{
		if deps.EventArchive != nil {
			eventsHandler := NewEventsHandler(deps.EventArchive)
			events.GET("", eventsHandler.ListRecent)
		}
		if deps.EventStream != nil {
			events.GET("/ws", gin.WrapF(deps.EventStream))
		}
	}

	// --- Admin (JWT-authenticated operator console) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.LedgerSvc, deps.AuctionSvc, deps.RegistrySvc, deps.OwnerAddress)
	admin := v1.Group("/admin", jwtAuth, rl("admin"))
	{
		ledger := admin.Group("/ledger")
		{
			ledger.POST("/fee", adminHandler.SetProtocolFee)
			ledger.POST("/fee-collector", adminHandler.SetFeeCollector)
			ledger.POST("/batch-processor", adminHandler.SetLedgerBatchProcessor)
			ledger.POST("/strategy-approval", adminHandler.SetStrategyApproval)
			ledger.POST("/pause", adminHandler.PauseLedger)
			ledger.POST("/unpause", adminHandler.UnpauseLedger)
		}

		auction := admin.Group("/auction")
		{
			auction.POST("/batch-duration", adminHandler.SetBatchDuration)
			auction.POST("/solver-window", adminHandler.SetSolverWindow)
			auction.POST("/early-close-volume", adminHandler.SetEarlyCloseVolume)
			auction.POST("/pause", adminHandler.PauseAuction)
			auction.POST("/unpause", adminHandler.UnpauseAuction)
		}

		registry := admin.Group("/registry")
		{
			registry.POST("/min-stake", adminHandler.SetMinStake)
			registry.POST("/slash-bps", adminHandler.SetSlashBps)
			registry.POST("/min-reputation", adminHandler.SetMinReputation)
			registry.POST("/reputation-decay", adminHandler.SetReputationDecay)
			registry.POST("/batch-processor", adminHandler.SetRegistryBatchProcessor)
			registry.POST("/solvers/:address/reactivate", adminHandler.ReactivateSolver)
		}
	}

	return r
}
