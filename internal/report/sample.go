package report

import (
	"math"
	"math/rand"
	"time"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// sampleScale holds the per-period magnitude of the demo series.
type sampleScale struct {
	base float64
	span float64
}

var sampleScales = map[entity.PeriodToken]sampleScale{
	entity.PeriodToday:   {300_000, 500_000},
	entity.PeriodWeek:    {2_100_000, 3_500_000},
	entity.PeriodMonth:   {9_000_000, 15_000_000},
	entity.PeriodQuarter: {27_000_000, 45_000_000},
}

// backfill replaces an all-zero series with plausible demo values.
// The generator is seeded from the calendar day and the token, so
// repeated renders on the same day show the same chart. Profit tracks
// 30% of sales and items one per hundred thousand rupiah, keeping the
// three lines visually consistent.
func backfill(series *entity.ChartSeries, token entity.PeriodToken, now time.Time) {
	scale, ok := sampleScales[token]
	if !ok {
		scale = sampleScales[entity.PeriodToday]
	}

	seed := startOfDay(now).Unix()
	for _, b := range []byte(token) {
		seed = seed*31 + int64(b)
	}
	rng := rand.New(rand.NewSource(seed))

	filled := false
	for i := range series.Sales {
		if rng.Float64() <= 0.2 {
			continue
		}
		trend := 1 + float64(i)*0.15
		sales := math.Floor((rng.Float64()*scale.span + scale.base) * trend)
		series.Sales[i] = sales
		series.Profit[i] = math.Floor(sales * 0.3)
		series.Items[i] = int(sales / 100_000)
		filled = true
	}
	// The skip roll can miss every bucket; a sample chart must never
	// come back empty, so force the newest bucket in that case.
	if !filled {
		n := len(series.Sales) - 1
		if n >= 0 {
			sales := math.Floor(rng.Float64()*scale.span + scale.base)
			series.Sales[n] = sales
			series.Profit[n] = math.Floor(sales * 0.3)
			series.Items[n] = int(sales / 100_000)
		}
	}
	series.Sample = true
}
