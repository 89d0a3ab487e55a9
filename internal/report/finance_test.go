package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func TestFinance(t *testing.T) {
	r := Resolve(entity.PeriodMonth, testNow)

	t.Run("margin and roi", func(t *testing.T) {
		products := []entity.Product{product(1, "Kemeja", "ATASAN", 5, 40_000, 85_000)}
		sales := []entity.Sale{sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted)}

		rep := Finance(sales, products, r)
		assert.Equal(t, int64(85_000), rep.TotalSales.IntPart())
		assert.Equal(t, int64(45_000), rep.NetProfit.IntPart())
		assert.Equal(t, int64(40_000), rep.TotalModal.IntPart())
		assert.InDelta(t, 52.94, rep.ProfitMargin, 0.01)
		assert.InDelta(t, 112.5, rep.ROI, 0.01)
		assert.InDelta(t, 100, rep.SuccessRate, 0.01)
	})

	t.Run("success rate counts cancellations", func(t *testing.T) {
		products := []entity.Product{product(1, "Kemeja", "ATASAN", 5, 40_000, 85_000)}
		sales := []entity.Sale{
			sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted),
			sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted),
			sale(1, 1, 85_000, 45_000, testNow, entity.SaleCancelled),
			sale(1, 1, 85_000, 45_000, testNow.AddDate(0, 0, -60), entity.SaleCancelled),
		}
		rep := Finance(sales, products, r)
		assert.Equal(t, 2, rep.CompletedCount)
		assert.Equal(t, 1, rep.CancelledCount)
		assert.InDelta(t, 66.67, rep.SuccessRate, 0.01)
	})

	t.Run("deleted product contributes no modal", func(t *testing.T) {
		sales := []entity.Sale{sale(99, 2, 50_000, 20_000, testNow, entity.SaleCompleted)}
		rep := Finance(sales, nil, r)
		assert.True(t, rep.TotalModal.IsZero())
		assert.Equal(t, int64(100_000), rep.TotalSales.IntPart())
		assert.Zero(t, rep.ROI)
	})

	t.Run("empty input is all zero", func(t *testing.T) {
		rep := Finance(nil, nil, r)
		assert.True(t, rep.TotalSales.IsZero())
		assert.Zero(t, rep.ProfitMargin)
		assert.Zero(t, rep.ROI)
		assert.Zero(t, rep.SuccessRate)
	})
}
