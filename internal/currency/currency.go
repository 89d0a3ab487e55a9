// Package currency formats rupiah amounts for the dashboard and the
// exported reports. All helpers follow Indonesian number conventions,
// dot as the thousand separator and comma as the decimal mark.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Format renders a full rupiah amount, e.g. "Rp 1.500.000".
// Fractions are rounded to the nearest rupiah.
func Format(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := FormatNumber(amount.Abs().Round(0).IntPart())
	if neg {
		return "-Rp " + s
	}
	return "Rp " + s
}

// FormatCompact renders a shortened amount for chart axes and stat
// cards: "Rp 1,2 jt" above a million, "Rp 300 rb" above a thousand,
// the plain amount below that.
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + "Rp " + trimComma(abs.Div(million).StringFixed(1)) + " jt"
	case abs.GreaterThanOrEqual(thousand):
		return sign + "Rp " + abs.Div(thousand).Round(0).String() + " rb"
	default:
		return sign + "Rp " + abs.Round(0).String()
	}
}

// FormatNumber groups an integer with dots, e.g. 1500000 -> "1.500.000".
func FormatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if n < 0 {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a ratio with one decimal and a comma mark,
// e.g. 52.94 -> "52,9%".
func FormatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", v), ".", ",", 1)
}

// Margin returns profit over sales as a percentage, zero when sales
// is zero.
func Margin(profit, sales decimal.Decimal) float64 {
	if sales.IsZero() {
		return 0
	}
	f, _ := profit.Div(sales).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

func trimComma(fixed string) string {
	fixed = strings.Replace(fixed, ".", ",", 1)
	return strings.TrimSuffix(fixed, ",0")
}
