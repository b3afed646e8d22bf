package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoanixX/high-concurrency-api/internal/api"
	"github.com/JoanixX/high-concurrency-api/internal/core/service"
	"github.com/JoanixX/high-concurrency-api/internal/infrastructure/cache"
	"github.com/JoanixX/high-concurrency-api/internal/infrastructure/config"
	mongodb "github.com/JoanixX/high-concurrency-api/internal/infrastructure/db/mongo"
	"github.com/JoanixX/high-concurrency-api/internal/infrastructure/security"
	"github.com/JoanixX/high-concurrency-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options come from config, so this one failure predates it.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Secondary adapters ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	cacheAdapter := cache.New(cache.Config{
		Addr:      cfg.Redis.Addr,
		DB:        cfg.Redis.DB,
		RestURL:   cfg.Redis.RestURL,
		RestToken: cfg.Redis.RestToken,
	}, log)
	defer func() { _ = cacheAdapter.Close() }()

	betRepo := mongodb.NewBetRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	hasher := security.NewBcryptHasher()

	// --- Use cases ---
	bettingService := service.NewBettingService(betRepo, cacheAdapter, log)
	authService := service.NewAuthService(userRepo, hasher, log)

	// --- Primary adapter ---
	e := api.NewRouter(api.RouterDeps{
		AuthService:    authService,
		BettingService: bettingService,
		Issuer:         api.NewTokenIssuer(cfg.JWTSecret, 24*time.Hour),
		JWTSecret:      cfg.JWTSecret,
		Mongo:          db,
		Cache:          cacheAdapter,
		Logger:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("betting core listening")

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
