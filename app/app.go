// Package app wires the stores, services and http server together.
package app

import (
	"context"
	"time"

	"log/slog"

	"github.com/oredafashion/oreda-manager/config"
	httpapi "github.com/oredafashion/oreda-manager/internal/api/http"
	"github.com/oredafashion/oreda-manager/internal/apisrv/dashboard"
	"github.com/oredafashion/oreda-manager/internal/apisrv/manager"
	"github.com/oredafashion/oreda-manager/internal/dependency"
	"github.com/oredafashion/oreda-manager/internal/export"
	"github.com/oredafashion/oreda-manager/internal/mirror"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
	"github.com/oredafashion/oreda-manager/internal/store"
	memstore "github.com/oredafashion/oreda-manager/internal/store/memory"
)

// App is the main application
type App struct {
	hs     *httpapi.Server
	db     dependency.Repository
	mirror *mirror.Mirror
	sched  *scheduler.Scheduler
	worker *scheduler.Worker
	c      *config.Config
	done   chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting oreda manager")

	if a.c.DB.DSN == "" {
		slog.Default().WarnContext(ctx, "no mysql dsn configured, using in-memory store")
		mem := memstore.New()
		if a.c.Report.SampleBackfill {
			n := mem.SeedSampleData(ctx, a.c.Report.SampleDataDays)
			slog.Default().InfoContext(ctx, "seeded demo sales",
				slog.Int("count", n),
			)
		}
		a.db = mem
	} else {
		a.db, err = store.New(ctx, a.c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
				slog.String("err", err.Error()),
			)
			return err
		}
	}

	a.mirror = mirror.New(a.db)
	if err := a.mirror.ReloadAll(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cant load data mirror",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.sched = scheduler.New(a.c.Scheduler, a.mirror.ReloadAll)

	managerS := manager.New(a.db, a.mirror)
	dashboardS := dashboard.New(a.mirror, a.sched, a.c.Report, time.Now)
	exporter := export.New(dashboardS)

	a.worker = scheduler.NewWorker(a.sched)
	if err := a.worker.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start refresh worker",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP, managerS, dashboardS, a.sched, exporter)
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cant stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.worker != nil {
		if err := a.worker.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "cant stop refresh worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
