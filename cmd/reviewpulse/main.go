package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"reviewpulse/internal/app"
	"reviewpulse/internal/config"
	"reviewpulse/internal/history"
	"reviewpulse/internal/logging"
	"reviewpulse/internal/review"
	"reviewpulse/internal/sentiment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := logging.WithComponent("bootstrap")
	logger.Info("Starting reviewpulse", "env", cfg.AppEnv, "history_capacity", cfg.HistoryCapacity)

	clock := clockwork.NewRealClock()
	buffer := history.New(cfg.HistoryCapacity)
	cleaner := review.NewCleaner(clock)
	scorer := sentiment.NewAnalyzer()

	var limiter *rate.Limiter
	if cfg.IngestRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.IngestRateLimit), cfg.IngestRateBurst)
	}

	service := app.NewService(cleaner, scorer, buffer, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		service.Seed(ctx)
	}

	ticker := app.NewStatsTicker(service, clock, cfg.StatsInterval)
	go ticker.Run(ctx)

	<-ctx.Done()
	logger.Info("Shutdown signal received, exiting")
}
