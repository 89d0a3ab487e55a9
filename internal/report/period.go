// Package report implements the read-side aggregation core: period
// resolution, sales rollups, financial metrics and chart series. All
// functions are pure over their inputs and an injected reference
// instant, so every computation here is deterministic.
package report

import (
	"fmt"
	"time"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

var shortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Resolve maps a period token to its reporting window, a half-open
// interval ending at the start of the day after now. Unknown tokens
// resolve like "today" rather than erroring.
func Resolve(token entity.PeriodToken, now time.Time) entity.TimeRange {
	end := startOfDay(now).AddDate(0, 0, 1)
	switch token {
	case entity.PeriodWeek:
		return entity.TimeRange{Start: end.AddDate(0, 0, -7), End: end}
	case entity.PeriodMonth:
		return entity.TimeRange{Start: end.AddDate(0, 0, -30), End: end}
	case entity.PeriodQuarter:
		return entity.TimeRange{Start: end.AddDate(0, 0, -90), End: end}
	case entity.PeriodLifetime:
		return entity.TimeRange{End: end, Unbounded: true}
	default:
		return entity.TimeRange{Start: startOfDay(now), End: end}
	}
}

// Previous derives the immediately preceding window of the same
// length, adjacent to r with no gap and no overlap.
func Previous(r entity.TimeRange) entity.TimeRange {
	length := r.Days()
	return entity.TimeRange{
		Start: r.Start.AddDate(0, 0, -length),
		End:   r.Start,
	}
}

// Day returns the full-day window offset days before now.
func Day(now time.Time, offset int) entity.TimeRange {
	start := startOfDay(now).AddDate(0, 0, -offset)
	return entity.TimeRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// Week returns a rolling 7-day window ending offset weeks before now.
// These are not calendar weeks.
func Week(now time.Time, offset int) entity.TimeRange {
	end := startOfDay(now).AddDate(0, 0, 1-offset*7)
	return entity.TimeRange{Start: end.AddDate(0, 0, -7), End: end}
}

// Month returns the calendar month offset months before the current
// one, first instant to first instant of the next month.
func Month(now time.Time, offset int) entity.TimeRange {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offset, 0)
	return entity.TimeRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// Quarter returns a rolling 3-calendar-month window whose last month
// is the current month minus offset*3 months.
func Quarter(now time.Time, offset int) entity.TimeRange {
	y, m, _ := now.Date()
	anchor := time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offset*3, 0)
	return entity.TimeRange{Start: anchor.AddDate(0, -2, 0), End: anchor.AddDate(0, 1, 0)}
}

// DayLabel renders the bucket label for a daily window, e.g. "28 Agu".
func DayLabel(r entity.TimeRange) string {
	return fmt.Sprintf("%02d %s", r.Start.Day(), shortMonths[r.Start.Month()-1])
}

// WeekLabel renders the bucket label for a weekly window.
func WeekLabel(offset int) string {
	switch offset {
	case 0:
		return "Minggu Ini"
	case 1:
		return "Minggu Lalu"
	default:
		return fmt.Sprintf("%d Minggu Lalu", offset)
	}
}

// MonthLabel renders the bucket label for a monthly window.
func MonthLabel(offset int, r entity.TimeRange) string {
	switch offset {
	case 0:
		return "Bulan Ini"
	case 1:
		return "Bulan Lalu"
	default:
		return fmt.Sprintf("%s %d", shortMonths[r.Start.Month()-1], r.Start.Year())
	}
}

// QuarterLabel renders the bucket label for a quarterly window.
func QuarterLabel(offset int, r entity.TimeRange) string {
	switch offset {
	case 0:
		return "3 Bulan Ini"
	case 1:
		return "3 Bulan Lalu"
	default:
		q := (int(r.Start.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", q, r.Start.Year())
	}
}
