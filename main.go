package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/questboard/config"
	_ "github.com/DhavalSuthar-24/questboard/docs"
	"github.com/DhavalSuthar-24/questboard/pkg/revocation"
	"github.com/DhavalSuthar-24/questboard/routes"
)

// @title Questboard REST API
// @version 1.0
// @description Tabletop session listings and join requests.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		slog.Error("failed to initialize application", slog.Any("error", err))
		os.Exit(1)
	}

	cfg := config.GetConfig()
	log := config.NewLogger(cfg.App, os.Stdout)
	slog.SetDefault(log)

	if err := config.Migrate(config.DB); err != nil {
		log.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("migration successful", slog.String("driver", cfg.DB.Driver))

	revoked, closeStore := revocationStore(cfg, log)
	defer closeStore()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(config.DB, cfg, revoked, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", slog.String("port", cfg.App.Port), slog.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

// revocationStore uses Redis when REDIS_URL is set and the database otherwise.
func revocationStore(cfg *config.Config, log *slog.Logger) (revocation.Store, func()) {
	if cfg.Redis.URL == "" {
		return revocation.NewGormStore(config.DB), func() {}
	}

	client := revocation.NewClient(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, tracking revoked tokens in the database", slog.Any("error", err))
		_ = client.Close()
		return revocation.NewGormStore(config.DB), func() {}
	}
	log.Info("tracking revoked tokens in redis", slog.String("addr", cfg.Redis.URL))
	return revocation.NewRedisStore(client), func() { _ = client.Close() }
}
