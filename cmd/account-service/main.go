package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bankstack/bankstack/internal/api"
	"github.com/bankstack/bankstack/internal/core/service"
	mongodb "github.com/bankstack/bankstack/internal/infrastructure/db/mongo"
	redisdb "github.com/bankstack/bankstack/internal/infrastructure/db/redis"
	"github.com/bankstack/bankstack/internal/pkg/config"
	"github.com/bankstack/bankstack/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "account-service",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		ClientName: "account-service",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	accounts := mongodb.NewAccountRepository(db)
	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("accounts index setup failed")
	}

	// Only the verification half is needed here; tokens are issued by the
	// login service with the same shared secret.
	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TTL())
	if err != nil {
		log.Fatal().Err(err).Msg("token service setup failed")
	}

	e := api.NewAccountRouter(api.AccountRouterDeps{
		DB:       db,
		Redis:    rdb,
		Verifier: tokens,
		LoginURL: cfg.LoginURL,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("account service stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("account service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
