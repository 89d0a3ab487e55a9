package scheduler

import (
	"sync"
	"time"
)

// Debouncer delays a callback until a burst of triggers has gone
// quiet for the configured window. Each Trigger restarts the window.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	d     time.Duration
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules f after the quiet window, replacing any pending
// schedule. Only the last f of a burst runs.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.d, f)
}

// TriggerAfter behaves like Trigger with a one-off window, used when
// the quiet period varies per call.
func (d *Debouncer) TriggerAfter(delay time.Duration, f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, f)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
