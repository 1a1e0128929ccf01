package app

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"reviewpulse/internal/domain"
	"reviewpulse/internal/metrics"
)

// Cleaner is the subset of the validation layer the service needs.
type Cleaner interface {
	Clean(raw domain.RawReview) (domain.Review, bool)
}

// Service is the pipeline orchestrator — the only component that references
// multiple domain components. Safe for concurrent use: the periodic refresh
// trigger and user submissions may call Ingest and Snapshot simultaneously;
// the history store serializes the actual mutation.
type Service struct {
	cleaner Cleaner
	scorer  domain.Scorer
	history domain.ReviewStore
	limiter *rate.Limiter // nil when rate limiting is disabled
}

// NewService creates the pipeline orchestrator.
// limiter may be nil to disable the submission rate limit.
func NewService(cleaner Cleaner, scorer domain.Scorer, history domain.ReviewStore, limiter *rate.Limiter) *Service {
	return &Service{
		cleaner: cleaner,
		scorer:  scorer,
		history: history,
		limiter: limiter,
	}
}

// Ingest runs one raw review through the pipeline: rate-limit gate, clean,
// score, append. It reports whether the review was accepted and stored.
// Rejected input is dropped silently; no error ever reaches the caller.
func (s *Service) Ingest(ctx context.Context, raw domain.RawReview) bool {
	if s.limiter != nil && !s.limiter.Allow() {
		metrics.ReviewsIngestedTotal.WithLabelValues("rate_limited").Inc()
		slog.DebugContext(ctx, "review dropped: rate limited")
		return false
	}

	cleaned, ok := s.cleaner.Clean(raw)
	if !ok {
		metrics.ReviewsIngestedTotal.WithLabelValues("rejected").Inc()
		return false
	}

	sentiment, subjectivity := s.scorer.Score(cleaned.Text)
	scored := domain.ScoredReview{
		Review:         cleaned,
		SentimentScore: sentiment,
		Subjectivity:   subjectivity,
	}

	s.history.Append(scored)

	metrics.ReviewsIngestedTotal.WithLabelValues("accepted").Inc()
	metrics.ReviewSentimentScore.Observe(sentiment)
	metrics.HistoryBufferSize.Set(float64(s.history.Len()))

	slog.DebugContext(ctx, "review accepted",
		"id", scored.ID.String(),
		"rating", scored.Rating,
		"sentiment", scored.SentimentScore,
		"subjectivity", scored.Subjectivity,
	)
	return true
}

// Snapshot returns an insertion-ordered copy of the retained reviews.
func (s *Service) Snapshot() []domain.ScoredReview {
	return s.history.Snapshot()
}

// Stats summarizes the current snapshot for dashboard consumers.
func (s *Service) Stats() domain.Stats {
	snap := s.history.Snapshot()
	stats := domain.Stats{Count: len(snap)}
	if len(snap) == 0 {
		return stats
	}

	var sentimentSum, ratingSum float64
	for _, r := range snap {
		sentimentSum += r.SentimentScore
		ratingSum += r.Rating
	}
	stats.MeanSentiment = sentimentSum / float64(len(snap))
	stats.MeanRating = ratingSum / float64(len(snap))
	return stats
}
