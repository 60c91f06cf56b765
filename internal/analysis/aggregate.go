package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"luxstat/domain/core"
	"luxstat/domain/measure"
)

// Mean returns the arithmetic mean of the readings.
// An empty sequence is a contract violation, never a silent zero.
func Mean(values []float64) (float64, error) {
	m, err := stats.Mean(values)
	if err != nil {
		return 0, core.ErrEmptyMeasurementSet
	}
	return m, nil
}

// SampleStdDev returns the Bessel-corrected (N-1) standard deviation.
// A single reading has no spread to estimate, so N < 2 yields 0 by
// convention rather than an error.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return 0
	}
	return sd
}

// StandardError returns the standard error of the mean: sample standard
// deviation divided by sqrt(N). Returns 0 for an empty sequence; callers
// are expected to have rejected that case already.
func StandardError(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return SampleStdDev(values) / math.Sqrt(float64(len(values)))
}

// ComputeStatistics aggregates a MeasurementSet into its Statistics.
func ComputeStatistics(ms measure.MeasurementSet) (measure.Statistics, error) {
	values := ms.Values()

	mean, err := Mean(values)
	if err != nil {
		return measure.Statistics{}, err
	}

	return measure.Statistics{
		Mean:          mean,
		SampleStdDev:  SampleStdDev(values),
		StandardError: StandardError(values),
	}, nil
}
