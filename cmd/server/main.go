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

	"github.com/thoughts-cell/Property-Management-System/internal/api"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
	mongodb "github.com/thoughts-cell/Property-Management-System/internal/infrastructure/db/mongo"
	redisdb "github.com/thoughts-cell/Property-Management-System/internal/infrastructure/db/redis"
	"github.com/thoughts-cell/Property-Management-System/internal/infrastructure/mail"
	"github.com/thoughts-cell/Property-Management-System/internal/pkg/config"
	"github.com/thoughts-cell/Property-Management-System/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "property-system",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	var notifier ports.Notifier
	if cfg.SMTP.Enabled {
		notifier = mail.NewSMTPNotifier(mail.Config{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			From: cfg.SMTP.From,
		}, log)
	} else {
		notifier = mail.NewLogNotifier(log)
	}

	e := api.NewRouter(cfg, db, rdb, notifier, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
