package analytics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundPounds rounds a GBP amount to whole pounds, half away from zero.
func RoundPounds(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f
}

// RoundPence rounds a GBP amount to two decimal places.
func RoundPence(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatGBP renders whole pounds with thousands separators, e.g. £12,500.
func FormatGBP(v float64) string {
	s := decimal.NewFromFloat(math.Abs(v)).Round(0).StringFixed(0)

	var b strings.Builder
	if v < 0 && s != "0" {
		b.WriteByte('-')
	}
	b.WriteString("£")
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func safeDiv(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}
