package mirror

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/entity"
	memstore "github.com/oredafashion/oreda-manager/internal/store/memory"
)

func seedRepo(t *testing.T) *memstore.MemStore {
	t.Helper()
	ctx := context.Background()
	ms := memstore.New()

	p, err := ms.AddProduct(ctx, &entity.ProductInsert{
		Name:      "Kemeja Batik",
		Category:  "ATASAN",
		Stock:     8,
		BuyPrice:  decimal.NewFromInt(40_000),
		SellPrice: decimal.NewFromInt(85_000),
	})
	require.NoError(t, err)

	_, err = ms.AddProduct(ctx, &entity.ProductInsert{
		Name:      "Jam Tangan",
		Category:  "JAM",
		Stock:     4,
		BuyPrice:  decimal.NewFromInt(100_000),
		SellPrice: decimal.NewFromInt(250_000),
	})
	require.NoError(t, err)

	_, err = ms.RecordSale(ctx, &entity.SaleInsert{
		ProductId:    p.Id,
		Quantity:     2,
		SellPrice:    decimal.NewFromInt(85_000),
		CustomerName: "Budi",
		Source:       entity.SourceOffline,
	})
	require.NoError(t, err)

	end := time.Now().AddDate(0, 1, 0)
	_, err = ms.UpsertCoupon(ctx, &entity.CouponInsert{
		Code:    "HEMAT5",
		Type:    entity.CouponFixed,
		Value:   decimal.NewFromInt(5_000),
		MaxUses: 5,
		EndDate: &end,
	})
	require.NoError(t, err)

	return ms
}

func TestReloadAll(t *testing.T) {
	ctx := context.Background()
	m := New(seedRepo(t))
	require.NoError(t, m.ReloadAll(ctx))

	assert.Equal(t, 2, m.Products.Count())
	assert.Len(t, m.Sales.All(), 1)
	assert.NotEmpty(t, m.StockHistory.All())
	assert.Len(t, m.Coupons.All(), 1)

	p, found := m.Products.GetById(1)
	require.True(t, found)
	assert.Equal(t, "Kemeja Batik", p.Name)
	assert.Equal(t, 6, p.Stock)
}

func TestReloadFollowsWrites(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t)
	m := New(repo)
	require.NoError(t, m.ReloadAll(ctx))

	_, err := repo.AdjustStock(ctx, 1, -4, "Koreksi")
	require.NoError(t, err)

	p, _ := m.Products.GetById(1)
	assert.Equal(t, 6, p.Stock, "stale until reloaded")

	require.NoError(t, m.ReloadProducts(ctx))
	p, _ = m.Products.GetById(1)
	assert.Equal(t, 2, p.Stock)
}

func TestSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := New(seedRepo(t))
	require.NoError(t, m.ReloadAll(ctx))

	list := m.Products.All()
	list[0].Name = "Diubah"

	p, _ := m.Products.GetById(list[0].Id)
	assert.NotEqual(t, "Diubah", p.Name)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	m := New(seedRepo(t))
	require.NoError(t, m.ReloadAll(ctx))

	names := m.Categories.All()
	assert.Contains(t, names, "ATASAN")
	assert.Contains(t, names, "BAWAHAN")
	assert.Contains(t, names, "AKSESORIS")
	assert.Contains(t, names, "JAM")

	require.NoError(t, m.Categories.Add("SEPATU"))
	assert.ErrorIs(t, m.Categories.Add("SEPATU"), entity.ErrDuplicateCategory)
	assert.True(t, m.Categories.Has("SEPATU"))

	require.NoError(t, m.ReloadProducts(ctx))
	assert.True(t, m.Categories.Has("SEPATU"), "manual categories survive reloads")
}

func TestCouponLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	m := New(seedRepo(t))
	require.NoError(t, m.ReloadAll(ctx))

	c, found := m.Coupons.GetByCode("hemat5")
	require.True(t, found)
	assert.Equal(t, "HEMAT5", c.Code)
}
