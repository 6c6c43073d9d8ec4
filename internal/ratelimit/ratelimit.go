// Package ratelimit implements a sliding-window request counter keyed by
// client address.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per key and allows at most limit
// requests within a sliding window. State is process-local and resets on
// restart; keys are never evicted beyond per-key trimming.
type Limiter struct {
	limit  int
	window time.Duration

	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether a request from key may proceed. Timestamps older
// than the window are discarded first; a rejected attempt is not recorded,
// so hammering a saturated key does not extend its lockout.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamps := l.hits[key]

	kept := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.hits[key] = kept
		return false
	}

	l.hits[key] = append(kept, now)

	return true
}

// Window returns the configured window size, used for Retry-After hints.
func (l *Limiter) Window() time.Duration {
	return l.window
}
