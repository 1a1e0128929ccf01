package review

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"reviewpulse/internal/domain"
)

const (
	minTokens  = 3
	dateLayout = "2006-01-02"
)

// Cleaner normalizes raw reviews into canonical records.
type Cleaner struct {
	clock clockwork.Clock
}

func NewCleaner(clock clockwork.Clock) *Cleaner {
	return &Cleaner{clock: clock}
}

// Clean validates and normalizes raw. The second return is false when the
// input is rejected; rejection is logged at debug level and never surfaces
// as an error. Out-of-range or unparsable ratings are coerced to 0, never
// rejected for that reason alone.
func (c *Cleaner) Clean(raw domain.RawReview) (domain.Review, bool) {
	text := stripSpecial(raw.Text)
	if tokens := len(strings.Fields(text)); tokens < minTokens {
		slog.Debug("review rejected: too short", "tokens", tokens)
		return domain.Review{}, false
	}

	now := c.clock.Now()

	date := raw.Date
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		slog.Debug("review rejected: malformed date", "date", date)
		return domain.Review{}, false
	}

	ts := raw.Timestamp
	if ts == "" {
		ts = now.Format(time.RFC3339)
	} else if _, err := time.Parse(time.RFC3339, ts); err != nil {
		slog.Debug("review rejected: malformed timestamp", "timestamp", ts)
		return domain.Review{}, false
	}

	return domain.Review{
		ID:        uuid.New(),
		Text:      text,
		Rating:    normalizeRating(raw.Rating),
		Date:      date,
		Timestamp: ts,
		Status:    domain.StatusValid,
	}, true
}

// stripSpecial removes every rune that is not a letter, digit, or whitespace.
func stripSpecial(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeRating parses the rating and coerces anything unparsable to 0.
// Values outside [0,5] are replaced with 0, not clamped to the nearest bound.
func normalizeRating(v any) float64 {
	var rating float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		rating = n
	case float32:
		rating = float64(n)
	case int:
		rating = float64(n)
	case int64:
		rating = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		rating = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		rating = f
	default:
		return 0
	}
	// NaN compares false against both bounds, so check it explicitly.
	if math.IsNaN(rating) || rating < 0 || rating > 5 {
		return 0
	}
	return rating
}
