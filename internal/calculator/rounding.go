package calculator

import "math"

// RoundCurrency rounds value to precision decimal places.
//
// The value is scaled by 10^(precision+1) and floored to an integer, that
// integer is rounded to the nearest multiple of ten (half away from zero) and
// the result is scaled back. The same float64 input always yields the same
// output regardless of platform rounding defaults.
func RoundCurrency(value float64, precision int) float64 {
	multiplier := math.Pow(10, float64(precision+1))
	wholeNumber := math.Floor(value * multiplier)
	return math.Round(wholeNumber/10) * 10 / multiplier
}
