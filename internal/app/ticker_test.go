package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewpulse/internal/domain"
	"reviewpulse/internal/metrics"
)

func TestStatsTicker_RefreshesGaugeOnTick(t *testing.T) {
	svc := newTestService(10, nil)
	require.True(t, svc.Ingest(context.Background(), domain.RawReview{Text: "one review in the buffer"}))
	require.True(t, svc.Ingest(context.Background(), domain.RawReview{Text: "two reviews in the buffer"}))

	// Poison the gauge so the refresh is observable.
	metrics.HistoryBufferSize.Set(-1)

	clock := clockwork.NewFakeClock()
	ticker := NewStatsTicker(svc, clock, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.HistoryBufferSize) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after context cancellation")
	}
}

func TestNewStatsTicker_DefaultInterval(t *testing.T) {
	svc := newTestService(10, nil)
	ticker := NewStatsTicker(svc, clockwork.NewFakeClock(), 0)
	assert.Equal(t, defaultStatsInterval, ticker.interval)
}
