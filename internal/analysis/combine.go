package analysis

import (
	"math"

	"luxstat/domain/core"
	"luxstat/domain/measure"
)

// CombineUncertainties adds two independent uncertainties in quadrature:
// sqrt(experimental² + instrumental²). math.Hypot keeps the identity
// Combine(0, u) == u exact in floating point.
// Negative inputs violate the caller contract and fail fast.
func CombineUncertainties(experimental, instrumental float64) (float64, error) {
	if experimental < 0 {
		return 0, core.NewNegativeUncertaintyError("experimental uncertainty", experimental)
	}
	if instrumental < 0 {
		return 0, core.NewNegativeUncertaintyError("instrumental uncertainty", instrumental)
	}
	return math.Hypot(experimental, instrumental), nil
}

// Combine applies CombineUncertainties to a Statistics record, pairing the
// mean with the total uncertainty.
func Combine(stats measure.Statistics, instrumental float64) (measure.CombinedResult, error) {
	total, err := CombineUncertainties(stats.StandardError, instrumental)
	if err != nil {
		return measure.CombinedResult{}, err
	}
	return measure.CombinedResult{
		CentralValue:     stats.Mean,
		TotalUncertainty: total,
	}, nil
}
