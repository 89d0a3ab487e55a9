package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"log/slog"
)

// Config holds the scheduler tunables. Zero values are replaced with
// the shipped defaults so a partial config file still works.
type Config struct {
	ChartThrottle     time.Duration `mapstructure:"chart_throttle"`
	ResizeDebounce    time.Duration `mapstructure:"resize_debounce"`
	ScrollQuiet       time.Duration `mapstructure:"scroll_quiet"`
	FilterDebounce    time.Duration `mapstructure:"filter_debounce"`
	SignificantResize int           `mapstructure:"significant_resize"`
	RefreshInterval   time.Duration `mapstructure:"refresh_interval"`
}

func DefaultConfig() Config {
	return Config{
		ChartThrottle:     time.Second,
		ResizeDebounce:    500 * time.Millisecond,
		ScrollQuiet:       150 * time.Millisecond,
		FilterDebounce:    300 * time.Millisecond,
		SignificantResize: 50,
		RefreshInterval:   5 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ChartThrottle == 0 {
		c.ChartThrottle = d.ChartThrottle
	}
	if c.ResizeDebounce == 0 {
		c.ResizeDebounce = d.ResizeDebounce
	}
	if c.ScrollQuiet == 0 {
		c.ScrollQuiet = d.ScrollQuiet
	}
	if c.FilterDebounce == 0 {
		c.FilterDebounce = d.FilterDebounce
	}
	if c.SignificantResize == 0 {
		c.SignificantResize = d.SignificantResize
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = d.RefreshInterval
	}
	return c
}

// Scheduler coalesces refresh triggers into calls of a single refresh
// callback. A refresh is single flight: triggers arriving while one
// is running are dropped, never queued.
type Scheduler struct {
	c        Config
	throttle *Throttle
	resize   *Debouncer
	scroll   *Debouncer
	filter   *Debouncer
	refresh  func(ctx context.Context) error

	mu         sync.Mutex
	scrolling  bool
	touching   bool
	lastWidth  int
	lastHeight int

	inFlight atomic.Bool
}

func New(c Config, refresh func(ctx context.Context) error) *Scheduler {
	c = c.withDefaults()
	return &Scheduler{
		c:        c,
		throttle: NewThrottle(c.ChartThrottle),
		resize:   NewDebouncer(c.ResizeDebounce),
		scroll:   NewDebouncer(c.ScrollQuiet),
		filter:   NewDebouncer(c.FilterDebounce),
		refresh:  refresh,
	}
}

// OnResize feeds a viewport size signal. Small jitter and anything
// arriving mid-scroll is ignored; a significant change schedules a
// refresh once resizing goes quiet.
func (s *Scheduler) OnResize(ctx context.Context, width, height int) {
	s.mu.Lock()
	if s.scrolling {
		s.mu.Unlock()
		return
	}
	dw := abs(width - s.lastWidth)
	dh := abs(height - s.lastHeight)
	if s.lastWidth != 0 && dw < s.c.SignificantResize && dh < s.c.SignificantResize {
		s.mu.Unlock()
		return
	}
	s.lastWidth, s.lastHeight = width, height
	s.mu.Unlock()

	s.resize.Trigger(func() { s.run(ctx, false) })
}

// OnScroll marks the dashboard as scrolling until the signal goes
// quiet. Scrolling never refreshes by itself; it only suppresses the
// resize noise some platforms emit while scrolling. The quiet window
// doubles while a touch gesture is active to absorb momentum scroll.
func (s *Scheduler) OnScroll() {
	s.mu.Lock()
	s.scrolling = true
	quiet := s.c.ScrollQuiet
	if s.touching {
		quiet *= 2
	}
	s.mu.Unlock()

	s.scroll.TriggerAfter(quiet, func() {
		s.mu.Lock()
		s.scrolling = false
		s.mu.Unlock()
	})
}

// TouchStart remembers an active touch gesture.
func (s *Scheduler) TouchStart() {
	s.mu.Lock()
	s.touching = true
	s.mu.Unlock()
}

func (s *Scheduler) TouchEnd() {
	s.mu.Lock()
	s.touching = false
	s.mu.Unlock()
}

// OnFilterChange resets the standing throttle state so the upcoming
// refresh is not dropped, then schedules it after a short debounce.
func (s *Scheduler) OnFilterChange(ctx context.Context) {
	s.throttle.Reset()
	s.filter.Trigger(func() { s.run(ctx, true) })
}

// Trigger asks for a throttled refresh of the named chart. Returns
// whether the refresh actually ran.
func (s *Scheduler) Trigger(ctx context.Context, chart string) bool {
	if !s.throttle.Allow(chart) {
		return false
	}
	return s.run(ctx, false)
}

// Refresh runs the callback immediately, bypassing the throttle and
// the single-flight guard. Backs the explicit refresh button.
func (s *Scheduler) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

// Stop cancels all pending debounced work.
func (s *Scheduler) Stop() {
	s.resize.Stop()
	s.scroll.Stop()
	s.filter.Stop()
}

func (s *Scheduler) run(ctx context.Context, force bool) bool {
	if !force && !s.inFlight.CompareAndSwap(false, true) {
		return false
	}
	if !force {
		defer s.inFlight.Store(false)
	}

	if err := s.refresh(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cant refresh dashboard",
			slog.String("err", err.Error()),
		)
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
