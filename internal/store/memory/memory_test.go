package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

var frozen = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.Local)

func newStore() *MemStore {
	return NewWithClock(func() time.Time { return frozen })
}

func addProduct(t *testing.T, ms *MemStore, name string, stock int, buy, sell int64) *entity.Product {
	t.Helper()
	p, err := ms.AddProduct(context.Background(), &entity.ProductInsert{
		Name:      name,
		Category:  "ATASAN",
		Stock:     stock,
		BuyPrice:  decimal.NewFromInt(buy),
		SellPrice: decimal.NewFromInt(sell),
	})
	require.NoError(t, err)
	return p
}

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	ms := newStore()

	p := addProduct(t, ms, "Kemeja Batik", 8, 40_000, 85_000)
	assert.Equal(t, 1, p.Id)

	got, err := ms.GetProductById(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, "Kemeja Batik", got.Name)

	got, err = ms.UpdateProduct(ctx, p.Id, &entity.ProductInsert{
		Name:      "Kemeja Batik Premium",
		Category:  "ATASAN",
		Stock:     8,
		BuyPrice:  decimal.NewFromInt(45_000),
		SellPrice: decimal.NewFromInt(95_000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kemeja Batik Premium", got.Name)

	require.NoError(t, ms.DeleteProduct(ctx, p.Id))
	_, err = ms.GetProductById(ctx, p.Id)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestInitialStockIsLogged(t *testing.T) {
	ctx := context.Background()
	ms := newStore()
	p := addProduct(t, ms, "Kemeja", 8, 40_000, 85_000)

	entries, err := ms.GetStockHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, p.Id, entries[0].ProductId)
	assert.Equal(t, entity.StockIn, entries[0].Type)
	assert.Equal(t, 8, entries[0].Quantity)
	assert.Equal(t, 8, entries[0].FinalStock)
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	ms := newStore()
	p := addProduct(t, ms, "Kemeja", 8, 40_000, 85_000)

	got, err := ms.AdjustStock(ctx, p.Id, -3, "Rusak")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	entries, err := ms.GetStockHistory(ctx)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	assert.Equal(t, entity.StockOut, last.Type)
	assert.Equal(t, 3, last.Quantity)
	assert.Equal(t, 5, last.FinalStock)

	_, err = ms.AdjustStock(ctx, p.Id, -6, "Terlalu banyak")
	assert.ErrorIs(t, err, entity.ErrNegativeStock)
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()
	ms := newStore()
	p := addProduct(t, ms, "Kemeja", 5, 40_000, 85_000)

	t.Run("snapshots totals and decrements stock", func(t *testing.T) {
		s, err := ms.RecordSale(ctx, &entity.SaleInsert{
			ProductId:    p.Id,
			Quantity:     2,
			SellPrice:    decimal.NewFromInt(85_000),
			CustomerName: "Budi",
			Source:       entity.SourceShopee,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(170_000), s.Total.IntPart())
		assert.Equal(t, int64(90_000), s.Profit.IntPart())
		assert.Equal(t, entity.SaleCompleted, s.Status)

		got, err := ms.GetProductById(ctx, p.Id)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Stock)
	})

	t.Run("rejects oversell", func(t *testing.T) {
		_, err := ms.RecordSale(ctx, &entity.SaleInsert{
			ProductId: p.Id,
			Quantity:  10,
			SellPrice: decimal.NewFromInt(85_000),
			Source:    entity.SourceOffline,
		})
		assert.ErrorIs(t, err, entity.ErrInsufficientStock)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := ms.RecordSale(ctx, &entity.SaleInsert{
			ProductId: 999,
			Quantity:  1,
			SellPrice: decimal.NewFromInt(85_000),
			Source:    entity.SourceOffline,
		})
		assert.ErrorIs(t, err, entity.ErrProductNotFound)
	})
}

func TestCancelSaleRestoresStock(t *testing.T) {
	ctx := context.Background()
	ms := newStore()
	p := addProduct(t, ms, "Kemeja", 5, 40_000, 85_000)

	s, err := ms.RecordSale(ctx, &entity.SaleInsert{
		ProductId: p.Id,
		Quantity:  2,
		SellPrice: decimal.NewFromInt(85_000),
		Source:    entity.SourceOffline,
	})
	require.NoError(t, err)

	got, err := ms.GetProductById(ctx, p.Id)
	require.NoError(t, err)
	require.Equal(t, 3, got.Stock)

	cancelled, err := ms.CancelSale(ctx, s.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleCancelled, cancelled.Status)
	assert.True(t, cancelled.CancelledAt.Valid)

	got, err = ms.GetProductById(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	entries, err := ms.GetStockHistory(ctx)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	assert.Equal(t, entity.StockIn, last.Type)
	assert.Equal(t, 2, last.Quantity)
	assert.Equal(t, 5, last.FinalStock)

	_, err = ms.CancelSale(ctx, s.Id)
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
}

func TestCoupons(t *testing.T) {
	ctx := context.Background()
	ms := newStore()

	end := frozen.AddDate(0, 1, 0)
	c, err := ms.UpsertCoupon(ctx, &entity.CouponInsert{
		Code:    "diskon10",
		Type:    entity.CouponPercentage,
		Value:   decimal.NewFromInt(10),
		Minimum: decimal.NewFromInt(100_000),
		MaxUses: 5,
		EndDate: &end,
	})
	require.NoError(t, err)
	assert.Equal(t, "DISKON10", c.Code)
	assert.Equal(t, int64(100_000), c.Minimum.IntPart())
	assert.True(t, c.Active(frozen))

	got, err := ms.GetCouponByCode(ctx, "Diskon10")
	require.NoError(t, err)
	assert.Equal(t, c.Id, got.Id)

	require.NoError(t, ms.IncrementCouponUsage(ctx, "DISKON10"))
	got, err = ms.GetCouponByCode(ctx, "DISKON10")
	require.NoError(t, err)
	assert.Equal(t, 1, got.UsedCount)

	require.NoError(t, ms.DeleteCoupon(ctx, "diskon10"))
	_, err = ms.GetCouponByCode(ctx, "DISKON10")
	assert.ErrorIs(t, err, entity.ErrCouponNotFound)
}

func TestSeedSampleData(t *testing.T) {
	ctx := context.Background()
	ms := newStore()
	addProduct(t, ms, "Kemeja Batik", 8, 40_000, 85_000)
	addProduct(t, ms, "Celana Chino", 12, 60_000, 120_000)

	n := ms.SeedSampleData(ctx, 30)
	require.Positive(t, n)

	sales, err := ms.GetSalesList(ctx)
	require.NoError(t, err)
	require.Len(t, sales, n)

	earliest := time.Date(frozen.Year(), frozen.Month(), frozen.Day(), 0, 0, 0, 0, frozen.Location()).AddDate(0, 0, -30)
	for _, s := range sales {
		assert.Equal(t, "Pelanggan Demo", s.CustomerName)
		assert.Equal(t, entity.SaleCompleted, s.Status)
		assert.False(t, s.Date.Before(earliest), "sale dated %s before window", s.Date)
		assert.False(t, s.Date.After(frozen.AddDate(0, 0, 1)), "sale dated %s after window", s.Date)
		assert.False(t, s.Total.IsZero())
	}

	// Demo sales never move stock or write audit entries.
	p, err := ms.GetProductById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)
	entries, err := ms.GetStockHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// A non-empty ledger is left alone.
	assert.Zero(t, ms.SeedSampleData(ctx, 30))
}

func TestSeedSampleDataNeedsProducts(t *testing.T) {
	ms := newStore()
	assert.Zero(t, ms.SeedSampleData(context.Background(), 30))
}
