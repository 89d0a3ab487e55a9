// Package scheduler gates how often the dashboard recomputes its
// aggregates. Environmental signals (resize, scroll, filter change,
// the periodic timer) can fire far faster than a recompute is worth,
// so each path runs through a throttle or debounce before reaching
// the refresh callback.
package scheduler

import (
	"sync"
	"time"
)

// Throttle enforces a per-key minimum interval between events. A call
// arriving before the interval has elapsed is dropped, not queued.
type Throttle struct {
	mu   sync.Mutex
	last map[string]time.Time
	min  time.Duration
	now  func() time.Time
}

func NewThrottle(min time.Duration) *Throttle {
	return NewThrottleWithClock(min, time.Now)
}

// NewThrottleWithClock lets tests drive the clock by hand.
func NewThrottleWithClock(min time.Duration, now func() time.Time) *Throttle {
	return &Throttle{
		last: make(map[string]time.Time),
		min:  min,
		now:  now,
	}
}

// Allow reports whether the key may fire now and, if so, records the
// instant as the key's last firing.
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[key]; ok && now.Sub(last) < t.min {
		return false
	}
	t.last[key] = now
	return true
}

// Reset clears all standing state so the next Allow on any key fires
// immediately. Used on filter and period changes.
func (t *Throttle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = make(map[string]time.Time)
}
