package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Player1Taco/Liquid-Flow/config"
	httpHandler "github.com/Player1Taco/Liquid-Flow/internal/adapter/http/handler"
	pgStorage "github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/postgres"
	redisStorage "github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/redis"
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/strategy"
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/token"
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/ws"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/internal/service"
	"github.com/Player1Taco/Liquid-Flow/pkg/logger"
)

// ammAddress is the reference strategy contract deployed at startup.
const ammAddress = domain.Address("0xConstantProductAMM")

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Liquid Flow protocol node")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Event pipeline: log + durable archive + websocket feed
	eventRepo := pgStorage.NewEventRepo(pool)
	hub := ws.NewHub(log)
	defer hub.Close()
	events := service.NewMultiSink(
		service.NewZerologSink(log),
		service.NewArchiveSink(eventRepo),
		hub,
	)

	// Redis stores
	commitStore := redisStorage.NewCommitStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Token layer. The in-process bank stands in for the external asset
	// layer on local deployments.
	bank := token.NewMemoryBank()

	clock := service.NewSystemClock()
	digest := service.NewDigestService()

	// Core services
	ledgerSvc := service.NewLedgerService(service.LedgerConfig{
		Owner:           domain.Address(cfg.Ledger.Owner),
		Custody:         domain.Address(cfg.Ledger.Custody),
		FeeCollector:    domain.Address(cfg.Ledger.FeeCollector),
		BatchProcessor:  domain.Address(cfg.Auction.BatchProcessor),
		ProtocolFeeBps:  cfg.Ledger.ProtocolFeeBps,
		WithdrawalDelay: cfg.Ledger.WithdrawalDelay,
	}, bank, digest, clock, events, log)

	registrySvc := service.NewRegistryService(service.RegistryConfig{
		Owner:                  domain.Address(cfg.Ledger.Owner),
		Custody:                domain.Address(cfg.Ledger.Custody),
		Treasury:               domain.Address(cfg.Registry.Treasury),
		BatchProcessor:         domain.Address(cfg.Auction.BatchProcessor),
		StakeToken:             domain.Address(cfg.Registry.StakeToken),
		MinStake:               cfg.Registry.MinStake,
		InitialReputation:      cfg.Registry.InitialReputation,
		MinReputation:          cfg.Registry.MinReputation,
		SlashBps:               cfg.Registry.SlashBps,
		SlashReputationPenalty: cfg.Registry.SlashReputationPenalty,
		DecayPerDay:            cfg.Registry.DecayPerDay,
	}, bank, clock, events, log)

	executor := strategy.NewSettlementExecutor(ledgerSvc, log)

	auctionSvc := service.NewAuctionService(service.AuctionConfig{
		Owner:                  domain.Address(cfg.Ledger.Owner),
		BatchProcessor:         domain.Address(cfg.Auction.BatchProcessor),
		BatchDuration:          cfg.Auction.BatchDuration,
		SolverWindow:           cfg.Auction.SolverWindow,
		MinVolumeForEarlyClose: cfg.Auction.MinVolumeForEarlyClose,
		CancelCooldown:         cfg.Auction.CancelCooldown,
		CommitTTL:              cfg.Auction.CommitTTL,
		ReputationReward:       cfg.Auction.ReputationReward,
	}, registrySvc, registrySvc, executor, commitStore, digest, clock, events, log)

	// Reference strategy contract
	amm := strategy.NewConstantProductAMM(ammAddress, ledgerSvc)
	executor.Register(amm)
	if err := ledgerSvc.SetStrategyApproval(ctx, domain.Address(cfg.Ledger.Owner), ammAddress, true); err != nil {
		log.Fatal().Err(err).Msg("Failed to approve reference strategy contract")
	}

	// Operator console
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(service.OperatorCredentials{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}, hashSvc, tokenSvc)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		AuctionSvc:     auctionSvc,
		RegistrySvc:    registrySvc,
		TokenSvc:       tokenSvc,
		EventArchive:   eventRepo,
		EventStream:    hub.Upgrade,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		OwnerAddress:   domain.Address(cfg.Ledger.Owner),
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
