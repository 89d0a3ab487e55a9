// Package httpapi exposes the manager and dashboard services over a
// JSON REST API.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/apisrv/dashboard"
	"github.com/oredafashion/oreda-manager/internal/apisrv/manager"
	"github.com/oredafashion/oreda-manager/internal/export"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimit      int      `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	manager   *manager.Server
	dashboard *dashboard.Server
	sched     *scheduler.Scheduler
	exporter  *export.Exporter
	done      chan struct{}
}

// New creates a new server
func New(c *Config, mgr *manager.Server, dash *dashboard.Server, sched *scheduler.Scheduler, exp *export.Exporter) *Server {
	return &Server{
		c:         c,
		manager:   mgr,
		dashboard: dash,
		sched:     sched,
		exporter:  exp,
		done:      make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	if s.c.RateLimit > 0 {
		r.Use(httprate.Limit(
			s.c.RateLimit,
			15*time.Second,
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			}),
		))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api/manager", func(r chi.Router) {
		r.Post("/products", s.saveProduct)
		r.Put("/products/{id}", s.updateProduct)
		r.Delete("/products/{id}", s.deleteProduct)
		r.Post("/products/{id}/stock", s.adjustStock)
		r.Patch("/products", s.bulkUpdateProducts)
		r.Delete("/products", s.bulkDeleteProducts)

		r.Post("/sales", s.recordSale)
		r.Post("/sales/{id}/cancel", s.cancelSale)

		r.Post("/stock-history", s.addStockEntry)

		r.Post("/coupons", s.saveCoupon)
		r.Delete("/coupons/{code}", s.deleteCoupon)

		r.Post("/categories", s.addCategory)
	})

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/overview", s.overview)
		r.Get("/stats", s.stats)
		r.Get("/sales-series", s.salesSeries)
		r.Get("/order-outcome", s.orderOutcome)
		r.Get("/best-sellers", s.bestSellers)
		r.Get("/top-products", s.topProducts)
		r.Get("/recent-sales", s.recentSales)
		r.Get("/stock-alerts", s.stockAlerts)
		r.Get("/category-analysis", s.categoryAnalysis)
		r.Get("/financial-report", s.financialReport)
		r.Get("/categories", s.categories)

		r.Post("/signals/resize", s.signalResize)
		r.Post("/signals/scroll", s.signalScroll)
		r.Post("/signals/touch", s.signalTouch)
		r.Post("/signals/period-change", s.signalPeriodChange)
	})

	r.Get("/api/export/financial-report", s.exportFinancialReport)

	return r
}

// Start starts the http server in the background.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    addr,
		Handler: s.router(),
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening",
			slog.String("addr", addr),
		)
		if err := s.hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().ErrorContext(ctx, "http server exited",
				slog.String("err", err.Error()),
			)
		}
	}()
	return nil
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
