package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"reviewpulse/internal/metrics"
)

const defaultStatsInterval = 5 * time.Second

// StatsTicker periodically refreshes the history gauges and logs a summary
// line, so operators and polling consumers see liveness between submissions.
type StatsTicker struct {
	service  *Service
	clock    clockwork.Clock
	interval time.Duration
}

func NewStatsTicker(service *Service, clock clockwork.Clock, interval time.Duration) *StatsTicker {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsTicker{service: service, clock: clock, interval: interval}
}

// Run starts the periodic refresh loop. It blocks until ctx is cancelled.
func (t *StatsTicker) Run(ctx context.Context) {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			t.refresh(ctx)
		}
	}
}

func (t *StatsTicker) refresh(ctx context.Context) {
	stats := t.service.Stats()
	metrics.HistoryBufferSize.Set(float64(stats.Count))

	slog.DebugContext(ctx, "history stats refreshed",
		"count", stats.Count,
		"mean_sentiment", stats.MeanSentiment,
		"mean_rating", stats.MeanRating,
	)
}
