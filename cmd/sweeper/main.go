package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/internal/handler/middleware"
	"clinicbook/internal/infra/db"
	"clinicbook/internal/infra/redisclient"
	"clinicbook/internal/infra/repository"
	"clinicbook/internal/pkg/clock"
	"clinicbook/internal/pkg/config"
	"clinicbook/internal/usecase/commands"
)

// The sweeper cancels lapsed holds so their slots free up. Every replica
// ticks, but only the one holding the redis leader lock sweeps.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	logger.Info("sweeper starting", "interval", cfg.Sweeper.Interval.String())

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	rdb, err := redisclient.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("error closing redis", "error", err)
		}
	}()

	loc, err := cfg.Clinic.Location()
	if err != nil {
		logger.Error("failed to load clinic timezone", "error", err, "timezone", cfg.Clinic.TimeZone)
		os.Exit(1)
	}

	sweeper := commands.NewSweepCommands(
		db.NewTxRunner(pool),
		repository.NewAppointmentRepository(),
		redisclient.NewLeaderLocker(rdb, cfg.Sweeper.LockTTL),
		clock.NewCivil(clock.NewRealClock(), loc),
		logger,
	)

	// Run once at startup
	runOnce(rootCtx, sweeper, logger)

	ticker := time.NewTicker(cfg.Sweeper.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-rootCtx.Done():
			logger.Info("shutdown signal received, stopping sweeper")
			return
		case <-ticker.C:
			runOnce(rootCtx, sweeper, logger)
		}
	}
}

func runOnce(ctx context.Context, sweeper commands.SweepCommands, logger *slog.Logger) {
	runCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	swept, err := sweeper.ExpireOverdue(runCtx)
	if err != nil {
		logger.Error("sweep run failed", "error", err)
		return
	}
	logger.Info("sweep run complete", "swept", swept, "duration", time.Since(start).String())
}
