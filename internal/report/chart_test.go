package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func TestBuildSeriesDaily(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("real sales land in their buckets", func(t *testing.T) {
		sales := []entity.Sale{
			sale(1, 2, 85_000, 45_000, testNow, entity.SaleCompleted),
			sale(1, 1, 85_000, 45_000, testNow.AddDate(0, 0, -2), entity.SaleCompleted),
		}
		s := BuildSeries(entity.PeriodToday, testNow, sales, cfg)
		require.Len(t, s.Labels, 7)
		assert.Equal(t, "15 Mar", s.Labels[6])
		assert.Equal(t, 170_000.0, s.Sales[6])
		assert.Equal(t, 85_000.0, s.Sales[4])
		assert.Equal(t, 2, s.Items[6])
		assert.False(t, s.Sample)
	})

	t.Run("no data with backfill enabled", func(t *testing.T) {
		s := BuildSeries(entity.PeriodToday, testNow, nil, cfg)
		require.Len(t, s.Labels, 7)
		assert.True(t, s.Sample)
		var nonZero int
		for i := range s.Sales {
			if s.Sales[i] > 0 {
				nonZero++
				assert.InDelta(t, s.Sales[i]*0.3, s.Profit[i], 1)
				assert.Equal(t, int(s.Sales[i]/100_000), s.Items[i])
			}
		}
		assert.Greater(t, nonZero, 0)
	})

	t.Run("backfill is deterministic for a given day", func(t *testing.T) {
		a := BuildSeries(entity.PeriodToday, testNow, nil, cfg)
		b := BuildSeries(entity.PeriodToday, testNow, nil, cfg)
		assert.Equal(t, a, b)
	})

	t.Run("no data with backfill disabled", func(t *testing.T) {
		quiet := cfg
		quiet.SampleBackfill = false
		s := BuildSeries(entity.PeriodToday, testNow, nil, quiet)
		require.Len(t, s.Labels, 7)
		assert.False(t, s.Sample)
		for _, v := range s.Sales {
			assert.Zero(t, v)
		}
	})

	t.Run("partial real data is never overwritten", func(t *testing.T) {
		sales := []entity.Sale{sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted)}
		s := BuildSeries(entity.PeriodToday, testNow, sales, cfg)
		assert.False(t, s.Sample)
		assert.Equal(t, 85_000.0, s.Sales[6])
		for i := 0; i < 6; i++ {
			assert.Zero(t, s.Sales[i])
		}
	})
}

func TestBuildSeriesBucketCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleBackfill = false

	assert.Len(t, BuildSeries(entity.PeriodWeek, testNow, nil, cfg).Labels, 4)
	assert.Len(t, BuildSeries(entity.PeriodMonth, testNow, nil, cfg).Labels, 4)
	assert.Len(t, BuildSeries(entity.PeriodQuarter, testNow, nil, cfg).Labels, 4)

	cfg.WeeklyBuckets = 6
	assert.Len(t, BuildSeries(entity.PeriodWeek, testNow, nil, cfg).Labels, 6)
}

func TestBuildSeriesWeeklyLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleBackfill = false
	s := BuildSeries(entity.PeriodWeek, testNow, nil, cfg)
	assert.Equal(t, []string{"3 Minggu Lalu", "2 Minggu Lalu", "Minggu Lalu", "Minggu Ini"}, s.Labels)
}

func TestOrderOutcomes(t *testing.T) {
	sales := []entity.Sale{
		sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted),
		sale(1, 1, 85_000, 45_000, testNow, entity.SaleCompleted),
		sale(1, 1, 85_000, 45_000, testNow, entity.SaleCancelled),
	}
	out := OrderOutcomes(sales, Resolve(entity.PeriodWeek, testNow))
	assert.Equal(t, entity.OrderOutcome{Completed: 2, Cancelled: 1}, out)
}

func TestTopProducts(t *testing.T) {
	products := []entity.Product{
		product(1, "Kemeja", "ATASAN", 5, 40_000, 85_000),
		product(2, "Celana", "BAWAHAN", 5, 60_000, 120_000),
	}
	sales := []entity.Sale{
		sale(2, 5, 120_000, 60_000, testNow, entity.SaleCompleted),
		sale(1, 2, 85_000, 45_000, testNow, entity.SaleCompleted),
	}
	top := TopProducts(sales, products, Resolve(entity.PeriodWeek, testNow), 5)
	require.Len(t, top, 2)
	assert.Equal(t, entity.TopProduct{ProductName: "Celana", TotalSold: 5}, top[0])
}
