package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// Config carries the tunables of the aggregation core. Tests inject
// small values; production values come from the config file.
type Config struct {
	LowStockThreshold int  `mapstructure:"low_stock_threshold"`
	BestSellersLimit  int  `mapstructure:"best_sellers_limit"`
	TopProductsLimit  int  `mapstructure:"top_products_limit"`
	RecentSalesLimit  int  `mapstructure:"recent_sales_limit"`
	DailyBuckets      int  `mapstructure:"daily_buckets"`
	WeeklyBuckets     int  `mapstructure:"weekly_buckets"`
	MonthlyBuckets    int  `mapstructure:"monthly_buckets"`
	QuarterlyBuckets  int  `mapstructure:"quarterly_buckets"`
	SampleBackfill    bool `mapstructure:"sample_backfill"`
	SampleDataDays    int  `mapstructure:"sample_data_days"`
}

// DefaultConfig mirrors the dashboard's shipped defaults.
func DefaultConfig() Config {
	return Config{
		LowStockThreshold: 5,
		BestSellersLimit:  5,
		TopProductsLimit:  5,
		RecentSalesLimit:  5,
		DailyBuckets:      7,
		WeeklyBuckets:     4,
		MonthlyBuckets:    4,
		QuarterlyBuckets:  4,
		SampleBackfill:    true,
		SampleDataDays:    30,
	}
}

// Summarize rolls up the sales dated inside r: money and item totals
// over the completed ones, a count of the cancelled ones. An empty
// slice yields the zero summary.
func Summarize(sales []entity.Sale, r entity.TimeRange) entity.PeriodSummary {
	var s entity.PeriodSummary
	for i := range sales {
		if !r.Contains(sales[i].Date) {
			continue
		}
		if sales[i].Status == entity.SaleCancelled {
			s.CancelledCount++
			continue
		}
		s.TotalSales = s.TotalSales.Add(sales[i].Total)
		s.NetProfit = s.NetProfit.Add(sales[i].Profit)
		s.ItemsSold += sales[i].Quantity
		s.SaleCount++
	}
	return s
}

// CancelledCount counts cancelled sales dated inside r. Cancellation
// is attributed to the sale date, not the cancellation date.
func CancelledCount(sales []entity.Sale, r entity.TimeRange) int {
	var n int
	for i := range sales {
		if sales[i].Status == entity.SaleCancelled && r.Contains(sales[i].Date) {
			n++
		}
	}
	return n
}

// ChangePercent computes the period-over-period delta. A zero
// previous maps to +100 (growth from nothing) or -100 (collapse to
// nothing), never to an infinity.
func ChangePercent(current, previous float64) float64 {
	switch {
	case previous == 0 && current == 0:
		return 0
	case previous == 0:
		return 100
	case current == 0:
		return -100
	default:
		return (current - previous) / abs(previous) * 100
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Compare aggregates the token's window and the adjacent previous
// window of equal length and attaches the deltas plus the
// inventory-wide counters. Money deltas are percentages; item and
// cancellation deltas are plain differences.
func Compare(token entity.PeriodToken, now time.Time, sales []entity.Sale, products []entity.Product, cfg Config) entity.PeriodStats {
	r := Resolve(token, now)
	cur := Summarize(sales, r)
	prev := Summarize(sales, Previous(r))

	stats := entity.PeriodStats{
		Period:   token,
		Range:    r,
		Current:  cur,
		Previous: prev,

		SalesChange:     ChangePercent(cur.TotalSales.InexactFloat64(), prev.TotalSales.InexactFloat64()),
		ProfitChange:    ChangePercent(cur.NetProfit.InexactFloat64(), prev.NetProfit.InexactFloat64()),
		ItemsChange:     cur.ItemsSold - prev.ItemsSold,
		CancelledChange: cur.CancelledCount - prev.CancelledCount,
	}

	stats.TotalProducts = len(products)
	for i := range products {
		stats.StockValue = stats.StockValue.Add(
			products[i].BuyPrice.Mul(decimal.NewFromInt(int64(products[i].Stock))))
		if products[i].Stock < cfg.LowStockThreshold {
			stats.LowStockCount++
		}
	}
	return stats
}

// BestSellers ranks products by units sold within r, over completed
// sales only. Sales of deleted products stay in the ranking under the
// deleted-product placeholder. Ordering after units sold is by sales
// amount and then name, so equal inputs always rank identically.
func BestSellers(sales []entity.Sale, products []entity.Product, r entity.TimeRange, limit int) []entity.BestSeller {
	byId := make(map[int]*entity.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	acc := make(map[int]*entity.BestSeller)
	var order []int
	for i := range sales {
		if sales[i].Status != entity.SaleCompleted || !r.Contains(sales[i].Date) {
			continue
		}
		bs, ok := acc[sales[i].ProductId]
		if !ok {
			bs = &entity.BestSeller{ProductId: sales[i].ProductId}
			if p, found := byId[sales[i].ProductId]; found {
				bs.ProductName = p.Name
				bs.Category = p.Category
				if len(p.Images) > 0 {
					bs.Image = p.Images[0]
				}
			} else {
				bs.ProductName = entity.DeletedProductName
			}
			acc[sales[i].ProductId] = bs
			order = append(order, sales[i].ProductId)
		}
		bs.TotalSold += sales[i].Quantity
		bs.TotalOrders++
		bs.TotalSales = bs.TotalSales.Add(sales[i].Total)
		bs.TotalProfit = bs.TotalProfit.Add(sales[i].Profit)
		if sales[i].Date.After(bs.LastSaleDate) {
			bs.LastSaleDate = sales[i].Date
		}
	}

	out := make([]entity.BestSeller, 0, len(order))
	for _, id := range order {
		out = append(out, *acc[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalSold != out[j].TotalSold {
			return out[i].TotalSold > out[j].TotalSold
		}
		if !out[i].TotalSales.Equal(out[j].TotalSales) {
			return out[i].TotalSales.GreaterThan(out[j].TotalSales)
		}
		return out[i].ProductName < out[j].ProductName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// StockAlerts returns the products below the low-stock threshold in
// their input order.
func StockAlerts(products []entity.Product, threshold int) []entity.StockAlert {
	var out []entity.StockAlert
	for i := range products {
		if products[i].Stock >= threshold {
			continue
		}
		a := entity.StockAlert{
			ProductId: products[i].Id,
			Name:      products[i].Name,
			Category:  products[i].Category,
			Stock:     products[i].Stock,
			Status:    entity.StatusOfStock(products[i].Stock),
		}
		if len(products[i].Images) > 0 {
			a.Image = products[i].Images[0]
		}
		out = append(out, a)
	}
	return out
}

// CategoryBreakdown sums inventory and in-period completed sales per
// category, ordered by sales amount descending. Sales of deleted
// products fall under the placeholder category.
func CategoryBreakdown(sales []entity.Sale, products []entity.Product, r entity.TimeRange) []entity.CategoryStat {
	acc := make(map[string]*entity.CategoryStat)
	var order []string
	get := func(cat string) *entity.CategoryStat {
		if cs, ok := acc[cat]; ok {
			return cs
		}
		cs := &entity.CategoryStat{Category: cat}
		acc[cat] = cs
		order = append(order, cat)
		return cs
	}

	byId := make(map[int]*entity.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
		cs := get(products[i].Category)
		cs.ProductCount++
		cs.TotalStock += products[i].Stock
		cs.StockValue = cs.StockValue.Add(
			products[i].BuyPrice.Mul(decimal.NewFromInt(int64(products[i].Stock))))
	}

	for i := range sales {
		if sales[i].Status != entity.SaleCompleted || !r.Contains(sales[i].Date) {
			continue
		}
		cat := entity.DeletedProductName
		if p, ok := byId[sales[i].ProductId]; ok {
			cat = p.Category
		}
		cs := get(cat)
		cs.TotalSales = cs.TotalSales.Add(sales[i].Total)
		cs.TotalProfit = cs.TotalProfit.Add(sales[i].Profit)
		cs.ItemsSold += sales[i].Quantity
	}

	out := make([]entity.CategoryStat, 0, len(order))
	for _, cat := range order {
		out = append(out, *acc[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSales.GreaterThan(out[j].TotalSales)
	})
	return out
}

// RecentSales returns the newest sales first, limited, with product
// names resolved against the current catalog.
func RecentSales(sales []entity.Sale, products []entity.Product, limit int) []entity.RecentSale {
	byId := make(map[int]*entity.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	sorted := make([]entity.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]entity.RecentSale, 0, len(sorted))
	for i := range sorted {
		rs := entity.RecentSale{
			Sale:        sorted[i],
			ProductName: entity.DeletedProductName,
			SourceLabel: sorted[i].Source.Label(),
		}
		if p, ok := byId[sorted[i].ProductId]; ok {
			rs.ProductName = p.Name
		}
		out = append(out, rs)
	}
	return out
}
