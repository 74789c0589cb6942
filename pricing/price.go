// Package pricing holds the pure money helpers shared by the catalog, cart
// and checkout layers: parsing currency-formatted display strings, computing
// discount percentages, and formatting totals with Indian digit grouping.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// ParseAmount converts a currency-formatted display string such as
// "₹18,500", "Rs. 25000" or " 1,299.50 " into a numeric amount. Every rune
// that is not a decimal digit or '.' is stripped before parsing. Empty or
// unparseable input yields 0; the result is never negative and the function
// never panics.
func ParseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

// Discount describes the deal block of a listing. Active is false when the
// original price is absent or does not exceed the current price, in which
// case no discount row is rendered.
type Discount struct {
	Active     bool `json:"active"`
	PercentOff int  `json:"percent_off"`
}

// ComputeDiscount compares a current and an original display price.
// PercentOff = round(100 * (original - current) / original), rounded half
// away from zero, which for these non-negative ratios is round-half-up.
func ComputeDiscount(price, originalPrice string) Discount {
	if originalPrice == "" {
		return Discount{}
	}
	current := ParseAmount(price)
	original := ParseAmount(originalPrice)
	if original <= current {
		return Discount{}
	}
	return Discount{
		Active:     true,
		PercentOff: int(math.Round(100 * (original - current) / original)),
	}
}

// FormatINR renders an amount with the rupee symbol and en-IN grouping,
// e.g. 41000 -> "₹41,000" and 123456 -> "₹1,23,456".
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount))
}
