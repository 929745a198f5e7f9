package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rollashield/screenquote/internal/config"
	"github.com/rollashield/screenquote/internal/db"
	"github.com/rollashield/screenquote/internal/logger"
	"github.com/rollashield/screenquote/internal/metrics"
	"github.com/rollashield/screenquote/internal/migrations"
	"github.com/rollashield/screenquote/internal/seed"
	"github.com/rollashield/screenquote/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	database, err := db.Open(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		zlog.Fatal("failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, cfg.DBDriver); err != nil {
			zlog.Fatal("failed to run database migrations", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	quotes := store.New(database, cfg.DBDriver)
	if cfg.SeedSample {
		stats, err := seed.Run(ctx, quotes)
		if err != nil {
			zlog.Fatal("failed to seed sample quote", zap.Error(err))
		}
		zlog.Info("seed complete", zap.Int("inserts", stats.Inserts))
	}

	srv := newServer(quotes, zlog, metrics.New())
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			zlog.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("listening", zap.String("addr", httpServer.Addr), zap.String("env", cfg.AppEnv))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server stopped", zap.Error(err))
	}
	zlog.Info("server stopped")
}
