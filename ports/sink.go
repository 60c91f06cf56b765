package ports

import "luxstat/domain/measure"

// ReportSink receives the session output. Implementations own all
// formatting; the pipeline never prints.
type ReportSink interface {
	// Diagnostics emits the unrounded intermediate values.
	Diagnostics(stats measure.Statistics, instrumental, total float64)

	// Profile emits the optional measurement-set diagnostics.
	Profile(p measure.Profile)

	// Result emits the final rounded (value, error) pair.
	Result(r measure.ReportedResult)
}
