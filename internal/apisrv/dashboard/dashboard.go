// Package dashboard implements the read-side service. All answers are
// computed synchronously from the mirror; the scheduler decides when
// the mirror itself is refreshed from the repository.
package dashboard

import (
	"context"
	"time"

	"github.com/oredafashion/oreda-manager/internal/entity"
	"github.com/oredafashion/oreda-manager/internal/mirror"
	"github.com/oredafashion/oreda-manager/internal/report"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
)

// Server implements handlers for dashboard.
type Server struct {
	mirror *mirror.Mirror
	sched  *scheduler.Scheduler
	cfg    report.Config
	now    func() time.Time
}

// New creates a new server with dashboard handlers. The clock is
// injectable so period resolution is deterministic under test.
func New(m *mirror.Mirror, sched *scheduler.Scheduler, cfg report.Config, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		mirror: m,
		sched:  sched,
		cfg:    cfg,
		now:    now,
	}
}

// Stats is the headline stat-card block for a period.
func (s *Server) Stats(ctx context.Context, token entity.PeriodToken) entity.PeriodStats {
	return report.Compare(token, s.now(), s.mirror.Sales.All(), s.mirror.Products.All(), s.cfg)
}

// SalesSeries is the bucketed sales/profit/items chart for a period.
func (s *Server) SalesSeries(ctx context.Context, token entity.PeriodToken) entity.ChartSeries {
	return report.BuildSeries(token, s.now(), s.mirror.Sales.All(), s.cfg)
}

// OrderOutcome is the completed versus cancelled doughnut for a period.
func (s *Server) OrderOutcome(ctx context.Context, token entity.PeriodToken) entity.OrderOutcome {
	r := report.Resolve(token, s.now())
	return report.OrderOutcomes(s.mirror.Sales.All(), r)
}

// BestSellers ranks products by units sold within the period.
func (s *Server) BestSellers(ctx context.Context, token entity.PeriodToken, limit int) []entity.BestSeller {
	if limit <= 0 {
		limit = s.cfg.BestSellersLimit
	}
	r := report.Resolve(token, s.now())
	return report.BestSellers(s.mirror.Sales.All(), s.mirror.Products.All(), r, limit)
}

// TopProducts is the best-sellers ranking reduced for the top-products
// chart.
func (s *Server) TopProducts(ctx context.Context, token entity.PeriodToken) []entity.TopProduct {
	r := report.Resolve(token, s.now())
	return report.TopProducts(s.mirror.Sales.All(), s.mirror.Products.All(), r, s.cfg.TopProductsLimit)
}

// RecentSales is the newest-first sales feed.
func (s *Server) RecentSales(ctx context.Context) []entity.RecentSale {
	return report.RecentSales(s.mirror.Sales.All(), s.mirror.Products.All(), s.cfg.RecentSalesLimit)
}

// StockAlerts lists the products below the low-stock threshold.
func (s *Server) StockAlerts(ctx context.Context) []entity.StockAlert {
	return report.StockAlerts(s.mirror.Products.All(), s.cfg.LowStockThreshold)
}

// CategoryAnalysis is the per-category inventory and sales breakdown.
func (s *Server) CategoryAnalysis(ctx context.Context, token entity.PeriodToken) []entity.CategoryStat {
	r := report.Resolve(token, s.now())
	return report.CategoryBreakdown(s.mirror.Sales.All(), s.mirror.Products.All(), r)
}

// FinancialReport is the margin/ROI/success-rate summary for a period.
func (s *Server) FinancialReport(ctx context.Context, token entity.PeriodToken) entity.FinancialReport {
	r := report.Resolve(token, s.now())
	return report.Finance(s.mirror.Sales.All(), s.mirror.Products.All(), r)
}

// Categories lists the known category names.
func (s *Server) Categories(ctx context.Context) []string {
	return s.mirror.Categories.All()
}

// Overview bundles everything one dashboard render needs.
type Overview struct {
	Stats        entity.PeriodStats     `json:"stats"`
	SalesSeries  entity.ChartSeries     `json:"salesSeries"`
	OrderOutcome entity.OrderOutcome    `json:"orderOutcome"`
	BestSellers  []entity.BestSeller    `json:"bestSellers"`
	TopProducts  []entity.TopProduct    `json:"topProducts"`
	RecentSales  []entity.RecentSale    `json:"recentSales"`
	StockAlerts  []entity.StockAlert    `json:"stockAlerts"`
	Categories   []entity.CategoryStat  `json:"categories"`
	Financial    entity.FinancialReport `json:"financial"`
}

// Overview computes the full dashboard in one pass over the mirror.
// With force set, the mirror is refreshed from the repository first,
// bypassing the scheduler's throttle; otherwise the refresh goes
// through the throttled path and may be skipped.
func (s *Server) Overview(ctx context.Context, token entity.PeriodToken, force bool) (*Overview, error) {
	if s.sched != nil {
		if force {
			if err := s.sched.Refresh(ctx); err != nil {
				return nil, err
			}
		} else {
			s.sched.Trigger(ctx, "overview")
		}
	}

	return &Overview{
		Stats:        s.Stats(ctx, token),
		SalesSeries:  s.SalesSeries(ctx, token),
		OrderOutcome: s.OrderOutcome(ctx, token),
		BestSellers:  s.BestSellers(ctx, token, 0),
		TopProducts:  s.TopProducts(ctx, token),
		RecentSales:  s.RecentSales(ctx),
		StockAlerts:  s.StockAlerts(ctx),
		Categories:   s.CategoryAnalysis(ctx, token),
		Financial:    s.FinancialReport(ctx, token),
	}, nil
}

// ChangePeriod tells the scheduler the user switched the reporting
// window, clearing standing throttle state so the next render is
// immediate.
func (s *Server) ChangePeriod(ctx context.Context) {
	if s.sched != nil {
		s.sched.OnFilterChange(ctx)
	}
}
