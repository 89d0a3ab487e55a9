package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodToken identifies a reporting window. Unknown tokens fall back
// to today's window.
type PeriodToken string

const (
	PeriodToday    PeriodToken = "today"
	PeriodWeek     PeriodToken = "7"
	PeriodMonth    PeriodToken = "30"
	PeriodQuarter  PeriodToken = "90"
	PeriodLifetime PeriodToken = "all"
)

// TimeRange is a half-open reporting window [Start, End). Lifetime
// ranges have Unbounded set and zero Start.
type TimeRange struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Unbounded bool      `json:"unbounded,omitempty"`
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Unbounded {
		return t.Before(r.End)
	}
	return !t.Before(r.Start) && t.Before(r.End)
}

// Days returns the whole-day length of the range, at least 1.
func (r TimeRange) Days() int {
	if r.Unbounded {
		return 0
	}
	d := int(r.End.Sub(r.Start).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// PeriodSummary is the aggregate of sales dated inside one window.
// Money and item totals cover completed sales only; CancelledCount
// counts the cancelled ones.
type PeriodSummary struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	ItemsSold      int             `json:"itemsSold"`
	SaleCount      int             `json:"saleCount"`
	CancelledCount int             `json:"cancelledCount"`
}

// PeriodStats pairs a summary with its change against the previous
// adjacent window of the same length. Money deltas are percentages;
// item and cancellation deltas are plain differences.
type PeriodStats struct {
	Period          PeriodToken     `json:"period"`
	Range           TimeRange       `json:"range"`
	Current         PeriodSummary   `json:"current"`
	Previous        PeriodSummary   `json:"previous"`
	SalesChange     float64         `json:"salesChange"`
	ProfitChange    float64         `json:"profitChange"`
	ItemsChange     int             `json:"itemsChange"`
	CancelledChange int             `json:"cancelledChange"`
	TotalProducts   int             `json:"totalProducts"`
	StockValue      decimal.Decimal `json:"stockValue"`
	LowStockCount   int             `json:"lowStockCount"`
}

// BestSeller is one row of the best-sellers ranking.
type BestSeller struct {
	ProductId    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	TotalSold    int             `json:"totalSold"`
	TotalOrders  int             `json:"totalOrders"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	LastSaleDate time.Time       `json:"lastSaleDate"`
}

// CategoryStat is one row of the per-category breakdown.
type CategoryStat struct {
	Category     string          `json:"category"`
	ProductCount int             `json:"productCount"`
	TotalStock   int             `json:"totalStock"`
	StockValue   decimal.Decimal `json:"stockValue"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	ItemsSold    int             `json:"itemsSold"`
}

// StockAlert is one low-stock row on the dashboard.
type StockAlert struct {
	ProductId int         `json:"productId"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Image     string      `json:"image"`
	Stock     int         `json:"stock"`
	Status    StockStatus `json:"status"`
}

// RecentSale is one row of the recent-sales feed, with the product
// name resolved at read time.
type RecentSale struct {
	Sale
	ProductName string `json:"productName"`
	SourceLabel string `json:"sourceLabel"`
}

// FinancialReport is the full financial summary for a window.
type FinancialReport struct {
	Range          TimeRange       `json:"range"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	TotalModal     decimal.Decimal `json:"totalModal"`
	ItemsSold      int             `json:"itemsSold"`
	CompletedCount int             `json:"completedCount"`
	CancelledCount int             `json:"cancelledCount"`
	ProfitMargin   float64         `json:"profitMargin"`
	ROI            float64         `json:"roi"`
	SuccessRate    float64         `json:"successRate"`
}

// ChartSeries is a label-aligned pair of sales and profit series for
// one reporting window, plus the items-sold counts per bucket.
type ChartSeries struct {
	Period PeriodToken `json:"period"`
	Labels []string    `json:"labels"`
	Sales  []float64   `json:"sales"`
	Profit []float64   `json:"profit"`
	Items  []int       `json:"items"`
	Sample bool        `json:"sample,omitempty"`
}

// OrderOutcome is the completed versus cancelled split for a window.
type OrderOutcome struct {
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// TopProduct is one slice of the top-products chart, ranked by units.
type TopProduct struct {
	ProductName string `json:"productName"`
	TotalSold   int    `json:"totalSold"`
}
