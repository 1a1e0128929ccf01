package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Analyzer scores text against the VADER sentiment lexicon. It is stateless
// and safe for concurrent use. Any backend satisfying domain.Scorer can
// replace it.
type Analyzer struct{}

func NewAnalyzer() Analyzer {
	return Analyzer{}
}

// Score returns the sentiment in [-1,1] and subjectivity in [0,1] for text.
// Sentiment is the VADER compound score; subjectivity is the non-neutral
// token proportion. Empty or degenerate text scores neutral (0, 0).
func (Analyzer) Score(text string) (sentiment, subjectivity float64) {
	if strings.TrimSpace(text) == "" {
		return 0, 0
	}

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	polarity := sentitext.PolarityScore(parsed)

	sentiment = clamp(polarity.Compound, -1, 1)
	subjectivity = clamp(1-polarity.Neutral, 0, 1)
	return sentiment, subjectivity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
