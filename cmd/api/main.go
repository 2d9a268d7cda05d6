package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tendermarket/tendering-api/internal/api"
	"github.com/tendermarket/tendering-api/internal/api/handler"
	"github.com/tendermarket/tendering-api/internal/core/service"
	"github.com/tendermarket/tendering-api/internal/infrastructure/config"
	mongodb "github.com/tendermarket/tendering-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tendermarket/tendering-api/internal/infrastructure/db/redis"
	"github.com/tendermarket/tendering-api/internal/infrastructure/queue"
	"github.com/tendermarket/tendering-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	tenderRepo := mongodb.NewTenderRepository(db)
	bidRepo := mongodb.NewBidRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := tenderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("tender indexes failed")
	}
	if err := bidRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("bid indexes failed")
	}

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	locker := redisdb.NewTenderLock(rdb)
	authService := service.NewAuthService(userRepo, dispatcher, cfg.JWTSecret, cfg.TokenTTL)
	tenderService := service.NewTenderService(tenderRepo, locker, dispatcher, log)
	bidService := service.NewBidService(bidRepo, tenderRepo, locker, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.RouterParams{
		Auth:      handler.NewAuthHandler(authService),
		Tenders:   handler.NewTenderHandler(tenderService),
		Bids:      handler.NewBidHandler(bidService),
		Readiness: handler.NewReadinessHandler(db, rdb),
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
