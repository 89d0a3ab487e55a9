package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/entity"
	"github.com/oredafashion/oreda-manager/internal/mirror"
	"github.com/oredafashion/oreda-manager/internal/report"
	"github.com/oredafashion/oreda-manager/internal/scheduler"
	memstore "github.com/oredafashion/oreda-manager/internal/store/memory"
)

var frozen = time.Date(2025, time.March, 15, 14, 0, 0, 0, time.Local)

func newServer(t *testing.T) (*Server, *memstore.MemStore, *mirror.Mirror) {
	t.Helper()
	ctx := context.Background()
	repo := memstore.NewWithClock(func() time.Time { return frozen })

	p, err := repo.AddProduct(ctx, &entity.ProductInsert{
		Name:      "Kemeja Batik",
		Category:  "ATASAN",
		Stock:     8,
		BuyPrice:  decimal.NewFromInt(40_000),
		SellPrice: decimal.NewFromInt(85_000),
	})
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, &entity.ProductInsert{
		Name:      "Topi",
		Category:  "AKSESORIS",
		Stock:     2,
		BuyPrice:  decimal.NewFromInt(15_000),
		SellPrice: decimal.NewFromInt(35_000),
	})
	require.NoError(t, err)

	_, err = repo.RecordSale(ctx, &entity.SaleInsert{
		ProductId:    p.Id,
		Quantity:     1,
		SellPrice:    decimal.NewFromInt(85_000),
		CustomerName: "Budi",
		Source:       entity.SourceOffline,
	})
	require.NoError(t, err)

	m := mirror.New(repo)
	require.NoError(t, m.ReloadAll(ctx))

	cfg := report.DefaultConfig()
	cfg.SampleBackfill = false
	sched := scheduler.New(scheduler.Config{ChartThrottle: time.Hour}, m.ReloadAll)
	return New(m, sched, cfg, func() time.Time { return frozen }), repo, m
}

func TestStats(t *testing.T) {
	s, _, _ := newServer(t)

	stats := s.Stats(context.Background(), entity.PeriodToday)
	assert.Equal(t, int64(85_000), stats.Current.TotalSales.IntPart())
	assert.Equal(t, int64(45_000), stats.Current.NetProfit.IntPart())
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.InDelta(t, 100, stats.SalesChange, 1e-9)
}

func TestSalesSeries(t *testing.T) {
	s, _, _ := newServer(t)

	series := s.SalesSeries(context.Background(), entity.PeriodToday)
	require.Len(t, series.Labels, 7)
	assert.Equal(t, 85_000.0, series.Sales[6])
	assert.False(t, series.Sample)
}

func TestOrderOutcome(t *testing.T) {
	ctx := context.Background()
	s, repo, m := newServer(t)

	sale, err := repo.RecordSale(ctx, &entity.SaleInsert{
		ProductId:    1,
		Quantity:     1,
		SellPrice:    decimal.NewFromInt(85_000),
		CustomerName: "Siti",
		Source:       entity.SourceOffline,
	})
	require.NoError(t, err)
	_, err = repo.CancelSale(ctx, sale.Id)
	require.NoError(t, err)
	require.NoError(t, m.ReloadSales(ctx))

	out := s.OrderOutcome(ctx, entity.PeriodToday)
	assert.Equal(t, entity.OrderOutcome{Completed: 1, Cancelled: 1}, out)
}

func TestStockAlerts(t *testing.T) {
	s, _, _ := newServer(t)

	alerts := s.StockAlerts(context.Background())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Topi", alerts[0].Name)
	assert.Equal(t, 2, alerts[0].Stock)
}

func TestFinancialReport(t *testing.T) {
	s, _, _ := newServer(t)

	rep := s.FinancialReport(context.Background(), entity.PeriodToday)
	assert.InDelta(t, 52.94, rep.ProfitMargin, 0.01)
	assert.InDelta(t, 112.5, rep.ROI, 0.01)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newServer(t)

	t.Run("throttled path may serve a stale mirror", func(t *testing.T) {
		ov, err := s.Overview(ctx, entity.PeriodToday, false)
		require.NoError(t, err)
		require.Len(t, ov.BestSellers, 1)
		assert.Equal(t, "Kemeja Batik", ov.BestSellers[0].ProductName)
	})

	t.Run("force refreshes the mirror first", func(t *testing.T) {
		_, err := repo.RecordSale(ctx, &entity.SaleInsert{
			ProductId:    2,
			Quantity:     2,
			SellPrice:    decimal.NewFromInt(35_000),
			CustomerName: "Andi",
			Source:       entity.SourceTiktok,
		})
		require.NoError(t, err)

		stale, err := s.Overview(ctx, entity.PeriodToday, false)
		require.NoError(t, err)

		fresh, err := s.Overview(ctx, entity.PeriodToday, true)
		require.NoError(t, err)

		assert.Equal(t, 1, stale.Stats.Current.SaleCount, "first trigger consumed the throttle window")
		assert.Equal(t, 2, fresh.Stats.Current.SaleCount)
	})
}

func TestBestSellersDefaultLimit(t *testing.T) {
	s, _, _ := newServer(t)
	ranked := s.BestSellers(context.Background(), entity.PeriodToday, 0)
	assert.Len(t, ranked, 1)
}
