package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/bankstack/bankstack/docs"
	"github.com/bankstack/bankstack/internal/api"
	"github.com/bankstack/bankstack/internal/core/service"
	mongodb "github.com/bankstack/bankstack/internal/infrastructure/db/mongo"
	redisdb "github.com/bankstack/bankstack/internal/infrastructure/db/redis"
	"github.com/bankstack/bankstack/internal/infrastructure/queue"
	"github.com/bankstack/bankstack/internal/pkg/config"
	"github.com/bankstack/bankstack/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        BankStack Login Service
// @version      1.0
// @description  Registration, login and session issuance for the BankStack demo.
// @BasePath     /
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
		AppName:  "login-service",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		ClientName: "login-service",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("users index setup failed")
	}

	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TTL())
	if err != nil {
		log.Fatal().Err(err).Msg("token service setup failed")
	}

	audit := queue.NewAuditWriter(0, mongodb.NewLoginAttemptRepository(db), log)
	audit.Start(ctx)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window())

	e := api.NewLoginRouter(api.LoginRouterDeps{
		DB:       db,
		Redis:    rdb,
		Tokens:   tokens,
		Audit:    audit,
		Throttle: throttle,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("login service stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("login service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
