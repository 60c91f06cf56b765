package console

import (
	"fmt"
	"math"
	"strconv"
)

// ValuesSource serves readings parsed up front from command-line arguments.
// Unlike the interactive Reader there is nobody to re-prompt, so parse
// failures surface as errors immediately.
type ValuesSource struct {
	values []float64
}

// ParseValues builds a ValuesSource from string arguments.
func ParseValues(args []string) (*ValuesSource, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %q is not a number", i+1, arg)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("measurement %d: %q is not finite", i+1, arg)
		}
		values[i] = v
	}
	return &ValuesSource{values: values}, nil
}

// Count returns the number of parsed readings.
func (s *ValuesSource) Count() (int, error) {
	return len(s.values), nil
}

// Measurement returns the reading at the given 1-based position.
func (s *ValuesSource) Measurement(index int) (float64, error) {
	if index < 1 || index > len(s.values) {
		return 0, fmt.Errorf("measurement index %d out of range", index)
	}
	return s.values[index-1], nil
}
