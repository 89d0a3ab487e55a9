package scheduler

import (
	"context"
	"fmt"
	"time"

	"log/slog"
)

// Worker drives the periodic dashboard refresh. Each tick goes
// through the scheduler's throttled path, so a tick landing right
// after a user-triggered refresh is dropped.
type Worker struct {
	s    *Scheduler
	ctx  context.Context
	stop context.CancelFunc
}

func NewWorker(s *Scheduler) *Worker {
	return &Worker{s: s}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("refresh worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("refresh worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	w.s.Stop()
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.s.c.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !w.s.Trigger(ctx, "periodic") {
				slog.Default().DebugContext(ctx, "periodic refresh dropped by throttle")
			}
		case <-ctx.Done():
			return
		}
	}
}
