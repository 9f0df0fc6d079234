// Package numeric holds the decimal rounding rules applied to header values.
package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1074

// Round rounds the stored binary value of v to the given number of decimal
// places, ties to even. 0.015 is stored as 0.01499... and rounds to 0.01.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := exact(v).RoundBank(places).Float64()
	return f
}

// exact returns the full decimal expansion of v.
func exact(v float64) decimal.Decimal {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		// FormatFloat output always parses.
		return decimal.NewFromFloat(v)
	}
	return d
}

// MagnitudePlaces returns floor(log10(n)), the number of decimal places used
// for values measured in periods of a frequency n. It returns 0 for n < 1.
func MagnitudePlaces(n uint32) int32 {
	if n < 1 {
		return 0
	}
	return int32(math.Floor(math.Log10(float64(n))))
}

// RoundToMagnitude rounds v to MagnitudePlaces(n) decimal places.
//
// Example: RoundToMagnitude(12.34567, 1000) = 12.346.
func RoundToMagnitude(v float64, n uint32) float64 {
	return Round(v, MagnitudePlaces(n))
}
