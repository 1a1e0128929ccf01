package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion Metrics
var (
	// ReviewsIngestedTotal tracks reviews offered to the pipeline by outcome
	ReviewsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_ingested_total",
			Help: "Total reviews offered to the pipeline by outcome (accepted/rejected/rate_limited)",
		},
		[]string{"status"},
	)

	// ReviewSentimentScore tracks the sentiment score distribution of accepted reviews
	ReviewSentimentScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "review_sentiment_score",
			Help:    "Sentiment score distribution of accepted reviews",
			Buckets: []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1},
		},
	)
)

// History Buffer Metrics
var (
	// HistoryBufferSize tracks the number of reviews currently retained
	HistoryBufferSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "history_buffer_size",
			Help: "Number of reviews currently retained in the history buffer",
		},
	)
)
