package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aihub/usecase-hub/internal/api"
	"github.com/aihub/usecase-hub/internal/core/service"
	"github.com/aihub/usecase-hub/internal/infrastructure/config"
	"github.com/aihub/usecase-hub/internal/infrastructure/db/postgres"
	redisdb "github.com/aihub/usecase-hub/internal/infrastructure/db/redis"
	"github.com/aihub/usecase-hub/pkg/logger"
)

func main() {
	// Best-effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options come from config, so this one failure path logs bare.
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("refusing to start")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ttl, err := cfg.ParseTokenTTL()
	if err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	db, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres unavailable")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		// The cache is an optimisation; run without it rather than refuse to start.
		log.Warn().Err(err).Msg("redis unavailable, running without cache")
		rdb = nil
	}

	tokens := service.NewTokenService(cfg.JWTSecret, ttl)
	e := api.NewRouter(db, rdb, tokens, logger.Component("http"))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("db close error")
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close error")
		}
	}

	log.Info().Msg("shutdown complete")
}
