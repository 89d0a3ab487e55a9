package report

import (
	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// Finance builds the financial summary for a window. TotalModal is
// priced at each product's current buy price, not the buy price at
// sale time, so it is an approximation whenever prices have been
// edited since; NetProfit keeps its per-sale snapshot semantics.
// Sales of deleted products contribute zero modal.
func Finance(sales []entity.Sale, products []entity.Product, r entity.TimeRange) entity.FinancialReport {
	byId := make(map[int]*entity.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	rep := entity.FinancialReport{Range: r}
	for i := range sales {
		if !r.Contains(sales[i].Date) {
			continue
		}
		if sales[i].Status == entity.SaleCancelled {
			rep.CancelledCount++
			continue
		}
		rep.CompletedCount++
		rep.TotalSales = rep.TotalSales.Add(sales[i].Total)
		rep.NetProfit = rep.NetProfit.Add(sales[i].Profit)
		rep.ItemsSold += sales[i].Quantity
		if p, ok := byId[sales[i].ProductId]; ok {
			rep.TotalModal = rep.TotalModal.Add(
				p.BuyPrice.Mul(decimal.NewFromInt(int64(sales[i].Quantity))))
		}
	}

	rep.ProfitMargin = ratio(rep.NetProfit, rep.TotalSales)
	rep.ROI = ratio(rep.NetProfit, rep.TotalModal)
	if total := rep.CompletedCount + rep.CancelledCount; total > 0 {
		rep.SuccessRate = float64(rep.CompletedCount) / float64(total) * 100
	}
	return rep
}

func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
