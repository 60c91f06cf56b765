package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrInvalidInput = errors.New("invalid input")

	// Contract violations of the statistical core
	ErrEmptyMeasurementSet = fmt.Errorf("%w: empty measurement set", ErrInvalidInput)
	ErrNegativeUncertainty = fmt.Errorf("%w: negative uncertainty", ErrInvalidInput)
	ErrNonFiniteValue      = fmt.Errorf("%w: non-finite value", ErrInvalidInput)
)

// Error constructors with context
func NewInvalidMeasurementError(index int, reason string) error {
	return fmt.Errorf("%w: measurement %d: %s", ErrInvalidInput, index, reason)
}

func NewNegativeUncertaintyError(name string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrNegativeUncertainty, name, value)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
