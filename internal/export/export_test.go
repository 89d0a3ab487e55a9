package export

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/apisrv/dashboard"
	"github.com/oredafashion/oreda-manager/internal/entity"
	"github.com/oredafashion/oreda-manager/internal/mirror"
	"github.com/oredafashion/oreda-manager/internal/report"
	memstore "github.com/oredafashion/oreda-manager/internal/store/memory"
)

var frozen = time.Date(2025, time.March, 15, 14, 0, 0, 0, time.Local)

func newExporter(t *testing.T) *Exporter {
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

	_, err = repo.RecordSale(ctx, &entity.SaleInsert{
		ProductId:    p.Id,
		Quantity:     2,
		SellPrice:    decimal.NewFromInt(85_000),
		CustomerName: "Budi",
		Source:       entity.SourceOffline,
	})
	require.NoError(t, err)

	m := mirror.New(repo)
	require.NoError(t, m.ReloadAll(ctx))

	cfg := report.DefaultConfig()
	cfg.SampleBackfill = false
	dash := dashboard.New(m, nil, cfg, func() time.Time { return frozen })
	return New(dash)
}

func TestFinancialReportWorkbook(t *testing.T) {
	e := newExporter(t)

	f, err := e.FinancialReportWorkbook(context.Background(), entity.PeriodToday)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{sheetSummary, sheetCategories, sheetBestSellers},
		f.GetSheetList(),
	)

	total, err := f.GetCellValue(sheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Rp 170.000", total)

	items, err := f.GetCellValue(sheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, "2", items)

	category, err := f.GetCellValue(sheetCategories, "A2")
	require.NoError(t, err)
	assert.Equal(t, "ATASAN", category)

	seller, err := f.GetCellValue(sheetBestSellers, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Kemeja Batik", seller)

	sold, err := f.GetCellValue(sheetBestSellers, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2", sold)
}
