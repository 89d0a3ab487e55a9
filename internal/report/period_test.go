package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

var testNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)

func TestResolve(t *testing.T) {
	t.Run("today", func(t *testing.T) {
		r := Resolve(entity.PeriodToday, testNow)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local), r.Start)
		assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.Local), r.End)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("seven days inclusive of today", func(t *testing.T) {
		r := Resolve(entity.PeriodWeek, testNow)
		assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local), r.Start)
		assert.Equal(t, 7, r.Days())
		assert.True(t, r.Contains(testNow))
	})

	t.Run("unknown token falls back to today", func(t *testing.T) {
		r := Resolve(entity.PeriodToken("yesterday"), testNow)
		assert.Equal(t, Resolve(entity.PeriodToday, testNow), r)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, tok := range []entity.PeriodToken{entity.PeriodToday, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodQuarter} {
			assert.Equal(t, Resolve(tok, testNow), Resolve(tok, testNow))
		}
	})
}

func TestPrevious(t *testing.T) {
	t.Run("same length and adjacent", func(t *testing.T) {
		r := Resolve(entity.PeriodWeek, testNow)
		p := Previous(r)
		assert.Equal(t, r.Days(), p.Days())
		assert.Equal(t, r.Start, p.End)
		assert.False(t, p.Contains(r.Start))
		assert.True(t, p.Contains(r.Start.Add(-time.Millisecond)))
	})

	t.Run("today yields yesterday", func(t *testing.T) {
		p := Previous(Resolve(entity.PeriodToday, testNow))
		assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local), p.Start)
		assert.Equal(t, 1, p.Days())
	})
}

func TestOffsetBuckets(t *testing.T) {
	t.Run("day", func(t *testing.T) {
		r := Day(testNow, 2)
		assert.Equal(t, time.Date(2025, time.March, 13, 0, 0, 0, 0, time.Local), r.Start)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("week is rolling not calendar", func(t *testing.T) {
		cur := Week(testNow, 0)
		prev := Week(testNow, 1)
		assert.Equal(t, 7, cur.Days())
		assert.Equal(t, cur.Start, prev.End)
		assert.True(t, cur.Contains(testNow))
	})

	t.Run("month has calendar bounds", func(t *testing.T) {
		r := Month(testNow, 1)
		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local), r.Start)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), r.End)
	})

	t.Run("month idempotent across variable lengths", func(t *testing.T) {
		endOfJan := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.Local)
		for off := 0; off < 6; off++ {
			require.Equal(t, Month(endOfJan, off), Month(endOfJan, off))
		}
	})

	t.Run("quarter spans three months", func(t *testing.T) {
		r := Quarter(testNow, 0)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), r.Start)
		assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local), r.End)
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "15 Mar", DayLabel(Day(testNow, 0)))
	assert.Equal(t, "Minggu Ini", WeekLabel(0))
	assert.Equal(t, "Minggu Lalu", WeekLabel(1))
	assert.Equal(t, "3 Minggu Lalu", WeekLabel(3))
	assert.Equal(t, "Bulan Ini", MonthLabel(0, Month(testNow, 0)))
	assert.Equal(t, "Jan 2025", MonthLabel(2, Month(testNow, 2)))
	assert.Equal(t, "3 Bulan Ini", QuarterLabel(0, Quarter(testNow, 0)))
	assert.Equal(t, "Q2 2024", QuarterLabel(3, Quarter(testNow, 3)))
}
