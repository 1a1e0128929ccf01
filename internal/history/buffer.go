package history

import (
	"sync"

	"reviewpulse/internal/domain"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 100

// Buffer is a fixed-capacity, insertion-ordered store of scored reviews.
// When full, the oldest record is evicted to make room. Safe for concurrent
// use: appends are serialized and snapshots are consistent copies.
type Buffer struct {
	mu   sync.RWMutex
	recs []domain.ScoredReview
	head int // index of the oldest record
	size int
}

// New creates an empty buffer. Capacity is fixed for the buffer's lifetime;
// non-positive values fall back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{recs: make([]domain.ScoredReview, capacity)}
}

// Append inserts rec, evicting the oldest record first if the buffer is
// full. O(1).
func (b *Buffer) Append(rec domain.ScoredReview) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.size < len(b.recs) {
		b.recs[(b.head+b.size)%len(b.recs)] = rec
		b.size++
		return
	}
	b.recs[b.head] = rec
	b.head = (b.head + 1) % len(b.recs)
}

// Snapshot returns a copy of the current contents in insertion order. The
// copy never aliases live storage, so later appends do not affect it.
func (b *Buffer) Snapshot() []domain.ScoredReview {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.ScoredReview, b.size)
	for i := range out {
		out[i] = b.recs[(b.head+i)%len(b.recs)]
	}
	return out
}

// Len returns the number of records currently retained.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Cap returns the capacity fixed at construction.
func (b *Buffer) Cap() int {
	return len(b.recs)
}
