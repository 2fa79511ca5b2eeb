package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barangaylink/records-system/internal/api"
	"github.com/barangaylink/records-system/internal/core/service"
	"github.com/barangaylink/records-system/internal/infrastructure/config"
	mongodb "github.com/barangaylink/records-system/internal/infrastructure/db/mongo"
	redisdb "github.com/barangaylink/records-system/internal/infrastructure/db/redis"
	"github.com/barangaylink/records-system/internal/infrastructure/queue"
	"github.com/barangaylink/records-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Barangay Records API
// @version         1.0
// @description     Resident, household, certificate, blotter and officials records management for a barangay office.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Activity log pipeline ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- Seed the default admin on an empty credential store ---
	userService := service.NewUserService(mongodb.NewUserRepository(db), dispatcher, log)
	if err := userService.Bootstrap(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
