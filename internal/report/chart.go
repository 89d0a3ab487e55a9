package report

import (
	"time"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// bucket is one labeled window of a time-series chart.
type bucket struct {
	label string
	r     entity.TimeRange
}

func buckets(token entity.PeriodToken, now time.Time, cfg Config) []bucket {
	switch token {
	case entity.PeriodWeek:
		out := make([]bucket, 0, cfg.WeeklyBuckets)
		for off := cfg.WeeklyBuckets - 1; off >= 0; off-- {
			out = append(out, bucket{WeekLabel(off), Week(now, off)})
		}
		return out
	case entity.PeriodMonth:
		out := make([]bucket, 0, cfg.MonthlyBuckets)
		for off := cfg.MonthlyBuckets - 1; off >= 0; off-- {
			r := Month(now, off)
			out = append(out, bucket{MonthLabel(off, r), r})
		}
		return out
	case entity.PeriodQuarter:
		out := make([]bucket, 0, cfg.QuarterlyBuckets)
		for off := cfg.QuarterlyBuckets - 1; off >= 0; off-- {
			r := Quarter(now, off)
			out = append(out, bucket{QuarterLabel(off, r), r})
		}
		return out
	default:
		out := make([]bucket, 0, cfg.DailyBuckets)
		for off := cfg.DailyBuckets - 1; off >= 0; off-- {
			r := Day(now, off)
			out = append(out, bucket{DayLabel(r), r})
		}
		return out
	}
}

// BuildSeries produces the label-aligned sales, profit and items
// series for the token's granularity, one entry per bucket, oldest
// first. With backfill enabled and no real sales anywhere in the
// visible window, the series are replaced by deterministic sample
// values so an empty dataset still draws a chart.
func BuildSeries(token entity.PeriodToken, now time.Time, sales []entity.Sale, cfg Config) entity.ChartSeries {
	bs := buckets(token, now, cfg)
	series := entity.ChartSeries{
		Period: token,
		Labels: make([]string, len(bs)),
		Sales:  make([]float64, len(bs)),
		Profit: make([]float64, len(bs)),
		Items:  make([]int, len(bs)),
	}

	empty := true
	for i, b := range bs {
		series.Labels[i] = b.label
		sum := Summarize(sales, b.r)
		series.Sales[i] = sum.TotalSales.InexactFloat64()
		series.Profit[i] = sum.NetProfit.InexactFloat64()
		series.Items[i] = sum.ItemsSold
		if series.Sales[i] != 0 {
			empty = false
		}
	}

	if empty && cfg.SampleBackfill {
		backfill(&series, token, now)
	}
	return series
}

// OrderOutcomes is the completed versus cancelled split for r.
func OrderOutcomes(sales []entity.Sale, r entity.TimeRange) entity.OrderOutcome {
	return entity.OrderOutcome{
		Completed: Summarize(sales, r).SaleCount,
		Cancelled: CancelledCount(sales, r),
	}
}

// TopProducts is the best-sellers ranking reduced to the label and
// value pairs the doughnut chart needs.
func TopProducts(sales []entity.Sale, products []entity.Product, r entity.TimeRange, limit int) []entity.TopProduct {
	ranked := BestSellers(sales, products, r, limit)
	out := make([]entity.TopProduct, 0, len(ranked))
	for i := range ranked {
		out = append(out, entity.TopProduct{
			ProductName: ranked[i].ProductName,
			TotalSold:   ranked[i].TotalSold,
		})
	}
	return out
}
