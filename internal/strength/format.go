package strength

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Infinity is shown for values that are unbounded or not meaningful.
const Infinity = "∞"

// maxGroupedExponent is the largest power of ten FormatCombinations still
// prints digit by digit.
const maxGroupedExponent = 6

var yearScales = []struct {
	limit   float64
	divisor float64
	unit    string
}{
	{1e3, 1, "Jahre"},
	{1e6, 1e3, "Tsd. Jahre"},
	{1e9, 1e6, "Mio. Jahre"},
	{1e12, 1e9, "Mrd. Jahre"},
	{1e15, 1e12, "Bio. Jahre"},
	{1e18, 1e15, "Brd. Jahre"},
}

// FormatCrackTime renders a duration in seconds the way the UI shows it,
// from "< 1 µs" up to quadrillions of years.
func FormatCrackTime(seconds float64) string {
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0:
		return Infinity
	case seconds < 1e-6:
		return "< 1 µs"
	case seconds < 1e-3:
		return "< 1 ms"
	case seconds < 1:
		return "< 1 Sek."
	case seconds < 60:
		return approx(seconds, 1, "Sek.")
	case seconds < 3600:
		return approx(seconds, 60, "Min.")
	case seconds < 86400:
		return approx(seconds, 3600, "Std.")
	case seconds < 2592000:
		return approx(seconds, 86400, "Tage")
	case seconds < SecondsPerYear:
		return approx(seconds, 2592000, "Monate")
	}

	years := Years(seconds)
	for _, s := range yearScales {
		if years < s.limit {
			return approx(years, s.divisor, s.unit)
		}
	}
	return Infinity
}

func approx(v, divisor float64, unit string) string {
	return "~" + groupDigits(math.Round(v/divisor)) + " " + unit
}

// FormatCombinations prints small counts with de-DE digit grouping and
// anything from 10^7 upwards as a power of ten.
func FormatCombinations(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Infinity
	}
	if exp := decimalExponent(n); exp > maxGroupedExponent {
		return "10" + superscript(exp)
	}
	return groupDigits(math.Round(n))
}

// decimalExponent returns floor(log10(|n|)) computed from the decimal
// representation, which is exact at powers of ten where math.Log10 is not.
func decimalExponent(n float64) int {
	if n == 0 {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(n), 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return 0
	}
	return exp
}

var superscriptDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		if r >= '0' && r <= '9' {
			b.WriteRune(superscriptDigits[r-'0'])
			continue
		}
		b.WriteRune('⁻')
	}
	return b.String()
}

// groupDigits writes an integral value with German thousands separators.
func groupDigits(v float64) string {
	p := message.NewPrinter(language.German)
	if math.Abs(v) < 1<<53 {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprintf("%.0f", v)
}
