package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"luxstat/domain/measure"
)

// ProfileMeasurements computes the display-only diagnostic profile of a
// measurement set: range, quartiles, distribution shape, and an IQR outlier
// count. Shape statistics are 0 when the set has no spread to describe.
func ProfileMeasurements(ms measure.MeasurementSet) (measure.Profile, error) {
	values := ms.Values()

	min, err := stats.Min(values)
	if err != nil {
		return measure.Profile{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return measure.Profile{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return measure.Profile{}, err
	}

	// The 25th percentile is undefined below four points; small sets
	// collapse the quartiles onto the median.
	q25, q75 := median, median
	if len(values) >= 4 {
		if q25, err = stats.Percentile(values, 25); err != nil {
			return measure.Profile{}, err
		}
		if q75, err = stats.Percentile(values, 75); err != nil {
			return measure.Profile{}, err
		}
	}

	profile := measure.Profile{
		Min:         min,
		Max:         max,
		Median:      median,
		Q25:         q25,
		Q75:         q75,
		IQROutliers: countIQROutliers(values, q25, q75),
	}

	// gonum's bias-corrected shape statistics are undefined below four
	// points (their correction terms divide by n-2 and n-3).
	if len(values) >= 4 && SampleStdDev(values) > 0 {
		profile.Skewness = stat.Skew(values, nil)
		profile.ExKurtosis = stat.ExKurtosis(values, nil)
	}

	return profile, nil
}

// countIQROutliers counts readings outside [q25-1.5*IQR, q75+1.5*IQR].
func countIQROutliers(values []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
