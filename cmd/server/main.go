// @title Timesheet API
// @version 1.0
// @description Personal work-hours tracking API: jobs, daily entries, salary reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	"github.com/clockwise/timesheet-api/internal/api"
	"github.com/clockwise/timesheet-api/internal/infrastructure/config"
	mongodb "github.com/clockwise/timesheet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/clockwise/timesheet-api/internal/infrastructure/db/redis"
	"github.com/clockwise/timesheet-api/internal/infrastructure/queue"
	"github.com/clockwise/timesheet-api/pkg/logger"
)

func main() {
	// Best-effort: a missing .env is fine, the environment wins anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores are required at boot; an unreachable one aborts startup.
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
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

	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	entryRepo := mongodb.NewEntryRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	for name, idx := range map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":         userRepo,
		"jobs":          jobRepo,
		"daily_entries": entryRepo,
		"activity_log":  activityRepo,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, activityRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:       db,
		Redis:    rdb,
		Sessions: sessions,
		Audit:    dispatcher,
		Activity: activityRepo,
		Cfg:      cfg,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
