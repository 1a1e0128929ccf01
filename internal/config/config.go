package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	HistoryCapacity int `env:"HISTORY_CAPACITY" default:"100"`

	// IngestRateLimit is the sustained submission rate per second.
	// Zero disables rate limiting.
	IngestRateLimit float64 `env:"INGEST_RATE_LIMIT" default:"0"`
	IngestRateBurst int     `env:"INGEST_RATE_BURST" default:"10"`

	StatsInterval time.Duration `env:"STATS_INTERVAL" default:"5s"`
	SeedOnStart   bool          `env:"SEED_ON_START" default:"true"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HistoryCapacity < 1 {
		return fmt.Errorf("HISTORY_CAPACITY must be at least 1, got %d", cfg.HistoryCapacity)
	}
	if cfg.IngestRateLimit < 0 {
		return fmt.Errorf("INGEST_RATE_LIMIT must not be negative, got %g", cfg.IngestRateLimit)
	}
	if cfg.IngestRateLimit > 0 && cfg.IngestRateBurst < 1 {
		return fmt.Errorf("INGEST_RATE_BURST must be at least 1 when rate limiting is enabled, got %d", cfg.IngestRateBurst)
	}
	if cfg.StatsInterval <= 0 {
		return fmt.Errorf("STATS_INTERVAL must be positive, got %s", cfg.StatsInterval)
	}
	return nil
}
