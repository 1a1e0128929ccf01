package app

import (
	"context"
	"log/slog"

	"reviewpulse/internal/domain"
)

// seedReviews is the fixed corpus ingested at startup so the buffer is never
// empty when the first consumer polls. It flows through the normal Ingest
// path, with no special-cased bootstrap logic.
var seedReviews = []domain.RawReview{
	{Text: "This book was amazing! Loved every page.", Rating: 5, Date: "2024-01-01"},
	{Text: "Pretty good read, though the ending felt rushed.", Rating: 4, Date: "2024-01-02"},
	{Text: "It was okay, nothing special to be honest.", Rating: 3, Date: "2024-01-03"},
	{Text: "Could not finish it. Very disappointing.", Rating: 1, Date: "2024-01-04"},
	{Text: "A solid story with memorable characters throughout.", Rating: 4, Date: "2024-01-05"},
	{Text: "Terrible pacing and a predictable plot, sadly.", Rating: 2, Date: "2024-01-06"},
}

// Seed ingests the built-in corpus and returns how many reviews were accepted.
func (s *Service) Seed(ctx context.Context) int {
	accepted := 0
	for _, raw := range seedReviews {
		if s.Ingest(ctx, raw) {
			accepted++
		}
	}
	slog.InfoContext(ctx, "seed corpus ingested", "accepted", accepted, "offered", len(seedReviews))
	return accepted
}
