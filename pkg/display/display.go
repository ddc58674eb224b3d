// Package display converts raw numeric and date values into the
// human-readable strings the trading dashboard shows. All formatting is
// pure and deterministic: the same input always yields the same string,
// and nothing here touches shared state.
package display

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradingplatform/display-formatter/pkg/locale"
)

// Formatter renders values under a fixed locale and digit policy.
// The zero value is not usable; construct with New.
type Formatter struct {
	Locale locale.Locale

	// CurrencyDigits is the fixed fraction-digit count for monetary values.
	CurrencyDigits int
	// PercentDigits is the fixed fraction-digit count for percentages.
	PercentDigits int
	// NumberMaxFraction caps fraction digits for plain numbers; trailing
	// zeros are trimmed.
	NumberMaxFraction int
	// DateLayout is the reference-time layout for Date output.
	DateLayout string
	// ExplicitPlus prefixes non-negative percentages with "+".
	ExplicitPlus bool
}

// New returns a Formatter with the standard digit policy for loc.
func New(loc locale.Locale) *Formatter {
	return &Formatter{
		Locale:            loc,
		CurrencyDigits:    loc.Currency.Decimals,
		PercentDigits:     2,
		NumberMaxFraction: 3,
		DateLayout:        loc.DateLayout,
		ExplicitPlus:      true,
	}
}

// std backs the package-level helpers.
var std = New(locale.EnUS)

// Default returns the formatter used by the package-level helpers (en-US,
// two-digit currency and percent).
func Default() *Formatter { return std }

// Currency formats v as a monetary amount: symbol, grouping separators,
// fixed fraction digits, half-away-from-zero rounding. The minus sign
// precedes the symbol: "-$5.00". Non-finite input degrades to the raw
// float text rather than failing.
func (f *Formatter) Currency(v float64) string {
	if !isFinite(v) {
		return nonFiniteText(v)
	}
	d := decimal.NewFromFloat(v).Round(int32(f.CurrencyDigits))
	s := f.groupFixed(d.Abs().StringFixed(int32(f.CurrencyDigits)))
	if d.IsNegative() {
		return "-" + f.Locale.Currency.Symbol + s
	}
	return f.Locale.Currency.Symbol + s
}

// Percent formats v, already expressed in percentage units, with fixed
// fraction digits and an explicit sign: "+3.46%", "-1.20%", "+0.00%".
// Percentages never carry grouping separators. The sign reflects the raw
// input, so negatives keep their minus even when they round to zero:
// "-0.00%".
func (f *Formatter) Percent(v float64) string {
	if !isFinite(v) {
		return nonFiniteText(v) + "%"
	}
	digits := int32(f.PercentDigits)
	s := decimal.NewFromFloat(math.Abs(v)).Round(digits).StringFixed(digits)
	if v < 0 {
		return "-" + s + "%"
	}
	if f.ExplicitPlus {
		return "+" + s + "%"
	}
	return s + "%"
}

// Number formats v with grouping separators on the integer part and up to
// NumberMaxFraction fraction digits, trailing zeros trimmed: "1,234,567",
// "1,234.5".
func (f *Formatter) Number(v float64) string {
	if !isFinite(v) {
		return nonFiniteText(v)
	}
	d := decimal.NewFromFloat(v).Round(int32(f.NumberMaxFraction))
	s := f.groupFixed(d.Abs().String())
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// Date parses s with the generic date parser and renders it under the
// formatter's layout. Unparseable input yields InvalidDate, never an error;
// callers that need a typed failure use ParseDate directly.
func (f *Formatter) Date(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return InvalidDate
	}
	return t.Format(f.DateLayout)
}

// groupFixed groups the integer part of an unsigned decimal string and
// swaps in the locale's decimal mark.
func (f *Formatter) groupFixed(s string) string {
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return groupDigits(s, f.Locale.Group)
	}
	return groupDigits(s[:idx], f.Locale.Group) + f.Locale.Decimal + s[idx+1:]
}

// groupDigits inserts the separator every three digits from the right in an
// integer string (digits only, no sign).
func groupDigits(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + (n/3)*len(sep))
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nonFiniteText mirrors strconv's spelling of the non-finite floats.
func nonFiniteText(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	default:
		return "-Inf"
	}
}
