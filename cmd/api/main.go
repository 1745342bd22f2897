package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projclock/projclock/internal/api"
	"github.com/projclock/projclock/internal/infrastructure/config"
	mongodb "github.com/projclock/projclock/internal/infrastructure/db/mongo"
	redisdb "github.com/projclock/projclock/internal/infrastructure/db/redis"
	"github.com/projclock/projclock/internal/infrastructure/queue"
	"github.com/projclock/projclock/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Mongo:     db,
		Redis:     rdb,
		Audit:     dispatcher,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  24 * time.Hour,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownCh

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProjectRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewActivityRepository(db).EnsureIndexes(ctx)
}
