package measure

import (
	"math"

	"luxstat/domain/core"
)

// DefaultInstrumentalUncertainty is the resolution limit of the reference
// lux meter, in lux. It is a process-wide constant, not derived from data;
// callers measuring with a different instrument override it explicitly.
const DefaultInstrumentalUncertainty = 0.1

// MeasurementSet is an ordered, non-empty sequence of lux readings.
// INVARIANTS:
// - Len() >= 1
// - every value is finite
// - immutable after construction (values are copied in and copied out)
type MeasurementSet struct {
	values []float64
}

// NewMeasurementSet validates and copies the given readings.
func NewMeasurementSet(values []float64) (MeasurementSet, error) {
	if len(values) == 0 {
		return MeasurementSet{}, core.ErrEmptyMeasurementSet
	}
	copied := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return MeasurementSet{}, core.NewInvalidMeasurementError(i+1, "not a finite number")
		}
		copied[i] = v
	}
	return MeasurementSet{values: copied}, nil
}

// Len returns the number of readings.
func (ms MeasurementSet) Len() int {
	return len(ms.values)
}

// Values returns a copy of the readings in entry order.
func (ms MeasurementSet) Values() []float64 {
	out := make([]float64, len(ms.values))
	copy(out, ms.values)
	return out
}

// Statistics holds the aggregate description of a MeasurementSet.
// SampleStdDev is 0 by convention when the set has fewer than two readings.
type Statistics struct {
	Mean          float64 `json:"mean"`
	SampleStdDev  float64 `json:"sample_std_dev"`
	StandardError float64 `json:"standard_error"`
}

// CombinedResult pairs the mean with the quadrature sum of the standard
// error of the mean and the instrumental uncertainty.
type CombinedResult struct {
	CentralValue     float64 `json:"central_value"`
	TotalUncertainty float64 `json:"total_uncertainty"`
}

// ReportedResult is the display form of a CombinedResult: the uncertainty
// carries exactly one significant figure and the value matches its decimal
// precision. Decimals records that precision for formatting.
type ReportedResult struct {
	Value    float64 `json:"value"`
	Error    float64 `json:"error"`
	Decimals int     `json:"decimals"`
}

// Profile is a display-only diagnostic of a MeasurementSet. It never feeds
// back into the reported value.
type Profile struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Median      float64 `json:"median"`
	Q25         float64 `json:"q25"`
	Q75         float64 `json:"q75"`
	Skewness    float64 `json:"skewness"`
	ExKurtosis  float64 `json:"ex_kurtosis"`
	IQROutliers int     `json:"iqr_outliers"`
}

// Report is the full outcome of one measurement session.
type Report struct {
	Measurements MeasurementSet
	Stats        Statistics
	Instrumental float64
	Combined     CombinedResult
	Reported     ReportedResult
	Profile      *Profile // nil unless profiling was requested
}
