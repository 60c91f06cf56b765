package analysis

import (
	"math"

	"luxstat/domain/measure"
)

// zeroErrorDecimals is the displayed precision when the uncertainty is zero
// (or collapses to zero during rounding) and no order of magnitude exists to
// derive a precision from.
const zeroErrorDecimals = 3

// RoundSignificant rounds an (value, error) pair for reporting: the error is
// reduced to one significant figure and the value to the matching number of
// decimal places.
//
// The decimal count is derived from the *rounded* error, not the original.
// Otherwise an error like 0.096 would round up to 0.1 while the value kept
// the two decimals implied by 0.096.
//
// Integer ties round half away from zero (math.Round): 1.5 -> 2, 2.5 -> 3.
func RoundSignificant(value, err float64) measure.ReportedResult {
	if err == 0 {
		return measure.ReportedResult{
			Value:    roundToDecimals(value, zeroErrorDecimals),
			Error:    0,
			Decimals: zeroErrorDecimals,
		}
	}

	// One significant figure at the error's order of magnitude.
	exponent := math.Floor(math.Log10(math.Abs(err)))
	scale := math.Pow(10, exponent)
	roundedErr := math.Round(err/scale) * scale

	decimals := zeroErrorDecimals
	if roundedErr != 0 {
		decimals = int(math.Max(0, -math.Floor(math.Log10(math.Abs(roundedErr)))))
	}

	return measure.ReportedResult{
		Value:    roundToDecimals(value, decimals),
		Error:    roundToDecimals(roundedErr, decimals),
		Decimals: decimals,
	}
}

func roundToDecimals(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
