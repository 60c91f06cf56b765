package ports

// MeasurementSource supplies the readings for one session. Interactive
// implementations re-prompt until input parses, so a returned error means
// the source itself is exhausted or broken (EOF, closed pipe), not a typo.
type MeasurementSource interface {
	// Count returns how many readings the session will contain (>= 1).
	Count() (int, error)

	// Measurement returns the reading at the given 1-based position.
	Measurement(index int) (float64, error)
}
