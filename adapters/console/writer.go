package console

import (
	"fmt"
	"io"

	"luxstat/domain/measure"
)

// Writer formats a measurement session for the console: intermediate values
// at fixed 6-decimal precision, the final pair at the precision the rounding
// policy picked.
type Writer struct {
	out io.Writer
}

// NewWriter creates a console report writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Diagnostics prints the unrounded intermediate values.
func (w *Writer) Diagnostics(stats measure.Statistics, instrumental, total float64) {
	fmt.Fprintf(w.out, "Mean:                     %.6f lux\n", stats.Mean)
	fmt.Fprintf(w.out, "Experimental uncertainty: %.6f lux\n", stats.StandardError)
	fmt.Fprintf(w.out, "Instrumental uncertainty: %.6f lux\n", instrumental)
	fmt.Fprintf(w.out, "Total uncertainty:        %.6f lux\n", total)
}

// Profile prints the optional measurement-set diagnostics.
func (w *Writer) Profile(p measure.Profile) {
	fmt.Fprintf(w.out, "Range:                    [%.6f, %.6f] lux\n", p.Min, p.Max)
	fmt.Fprintf(w.out, "Median (Q25..Q75):        %.6f (%.6f..%.6f) lux\n", p.Median, p.Q25, p.Q75)
	fmt.Fprintf(w.out, "Skewness / ex. kurtosis:  %.6f / %.6f\n", p.Skewness, p.ExKurtosis)
	fmt.Fprintf(w.out, "IQR outliers:             %d\n", p.IQROutliers)
}

// Result prints the reported value line.
func (w *Writer) Result(r measure.ReportedResult) {
	fmt.Fprintf(w.out, "X = (%.*f ± %.*f) lux\n", r.Decimals, r.Value, r.Decimals, r.Error)
}
