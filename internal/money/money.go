package money

import "github.com/shopspring/decimal"

// Currency is the display currency of the chain.
const Currency = "BYN"

// MustParse converts a literal price like "3.00" to a decimal amount.
// Panics on malformed input; only used for build-time constants.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Format renders an amount with 2-decimal currency precision.
// Rounding happens here and nowhere else; all intermediate
// arithmetic stays exact.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
