package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.HistoryCapacity)
	assert.Equal(t, 0.0, cfg.IngestRateLimit)
	assert.Equal(t, 10, cfg.IngestRateBurst)
	assert.Equal(t, 5*time.Second, cfg.StatsInterval)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HISTORY_CAPACITY", "25")
	t.Setenv("INGEST_RATE_LIMIT", "2.5")
	t.Setenv("INGEST_RATE_BURST", "5")
	t.Setenv("STATS_INTERVAL", "30s")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.HistoryCapacity)
	assert.Equal(t, 2.5, cfg.IngestRateLimit)
	assert.Equal(t, 5, cfg.IngestRateBurst)
	assert.Equal(t, 30*time.Second, cfg.StatsInterval)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_RejectsZeroCapacity(t *testing.T) {
	t.Setenv("HISTORY_CAPACITY", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "HISTORY_CAPACITY")
}

func TestLoad_RejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("INGEST_RATE_LIMIT", "-1")

	_, err := Load()
	assert.ErrorContains(t, err, "INGEST_RATE_LIMIT")
}

func TestLoad_RejectsZeroBurstWithRateLimit(t *testing.T) {
	t.Setenv("INGEST_RATE_LIMIT", "1")
	t.Setenv("INGEST_RATE_BURST", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "INGEST_RATE_BURST")
}

func TestLoad_RejectsNonPositiveStatsInterval(t *testing.T) {
	t.Setenv("STATS_INTERVAL", "0s")

	_, err := Load()
	assert.ErrorContains(t, err, "STATS_INTERVAL")
}
