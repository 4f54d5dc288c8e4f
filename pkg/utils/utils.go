package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// ToCurrency converts a float amount to decimal.Decimal rounded to cents
func ToCurrency(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// ToRatio converts a ratio or share to decimal.Decimal rounded to 4 places
func ToRatio(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(4)
}

// ToCount converts a fractional count (e.g. months) to two decimals without rounding up
func ToCount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Truncate(2)
}

// IsFinite reports whether f is neither NaN nor an infinity
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

