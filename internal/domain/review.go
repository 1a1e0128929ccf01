package domain

import (
	"github.com/google/uuid"
)

// StatusValid marks a review that passed validation and cleaning.
const StatusValid = "valid"

// --- Model types ---

// RawReview is untrusted external input. Rating may arrive as a string, an
// integer, a float, or a json.Number; no field carries any invariant.
type RawReview struct {
	Text      string `json:"text"`
	Rating    any    `json:"rating,omitempty"`
	Date      string `json:"date,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Review is a cleaned, normalized review. Only the cleaner produces these:
// Text is non-empty with special characters stripped, Rating is in [0,5],
// Date is YYYY-MM-DD, and Timestamp is RFC 3339.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    float64   `json:"rating"`
	Date      string    `json:"date"`
	Timestamp string    `json:"timestamp"`
	Status    string    `json:"validation_status"`
}

// ScoredReview is a cleaned review plus its sentiment scores.
// Immutable once created.
type ScoredReview struct {
	Review
	SentimentScore float64 `json:"sentiment_score"` // [-1, 1]
	Subjectivity   float64 `json:"subjectivity"`    // [0, 1]
}

// Stats summarizes a snapshot for dashboard consumers.
type Stats struct {
	Count         int     `json:"count"`
	MeanSentiment float64 `json:"mean_sentiment"`
	MeanRating    float64 `json:"mean_rating"`
}

// --- Interfaces ---

// Scorer computes sentiment and subjectivity for cleaned text.
// Sentiment is in [-1,1] (negative = negative sentiment), subjectivity in
// [0,1] (0 = fully objective). Implementations are pure: the same text always
// yields the same scores, and degenerate text scores neutral.
type Scorer interface {
	Score(text string) (sentiment, subjectivity float64)
}

// ReviewStore is the bounded, insertion-ordered history the pipeline appends
// to. Snapshot returns a copy that never aliases live storage.
type ReviewStore interface {
	Append(rec ScoredReview)
	Snapshot() []ScoredReview
	Len() int
	Cap() int
}
