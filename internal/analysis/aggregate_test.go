package analysis

import (
	"math"
	"testing"

	"luxstat/domain/core"
	"luxstat/domain/measure"
	"luxstat/internal/testkit"
)

func approxEqual(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}

func TestMean_SumOverCount(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"small integers", []float64{1, 2, 3, 4}, 2.5},
		{"identical values", []float64{10, 10, 10}, 10},
		{"single value", []float64{42.5}, 42.5},
		{"mixed signs", []float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			if err != nil {
				t.Fatalf("Mean returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMean_EmptyIsContractViolation(t *testing.T) {
	_, err := Mean(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !core.IsInvalidInput(err) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestSampleStdDev_BesselCorrection(t *testing.T) {
	// Deviations from mean 5.025: -0.025, 0.175, -0.225, 0.075.
	// Sum of squares 0.0875, /3 = 0.0291666..., sqrt = 0.170782512765993.
	got := SampleStdDev([]float64{5.0, 5.2, 4.8, 5.1})
	if !approxEqual(got, 0.170782512765993, 1e-12) {
		t.Errorf("SampleStdDev = %v, want ~0.1707825", got)
	}
}

func TestSampleStdDev_NoSpreadConvention(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"identical values", testkit.Constant(5, 10.0)},
		{"single value", []float64{3.14}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleStdDev(tt.values); got != 0 {
				t.Errorf("SampleStdDev(%v) = %v, want 0", tt.values, got)
			}
		})
	}
}

func TestStandardError(t *testing.T) {
	// Sample stddev 0.170782512765993 over sqrt(4).
	got := StandardError([]float64{5.0, 5.2, 4.8, 5.1})
	if !approxEqual(got, 0.0853912563829966, 1e-12) {
		t.Errorf("StandardError = %v, want ~0.0853913", got)
	}

	if got := StandardError([]float64{42.5}); got != 0 {
		t.Errorf("StandardError of single reading = %v, want 0", got)
	}
	if got := StandardError(nil); got != 0 {
		t.Errorf("StandardError of empty input = %v, want 0", got)
	}
}

func TestComputeStatistics(t *testing.T) {
	ms, err := measure.NewMeasurementSet([]float64{5.0, 5.2, 4.8, 5.1})
	if err != nil {
		t.Fatalf("NewMeasurementSet: %v", err)
	}

	stats, err := ComputeStatistics(ms)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}

	if !approxEqual(stats.Mean, 5.025, 1e-12) {
		t.Errorf("Mean = %v, want 5.025", stats.Mean)
	}
	if !approxEqual(stats.SampleStdDev, 0.170782512765993, 1e-12) {
		t.Errorf("SampleStdDev = %v, want ~0.1707825", stats.SampleStdDev)
	}
	if !approxEqual(stats.StandardError, 0.0853912563829966, 1e-12) {
		t.Errorf("StandardError = %v, want ~0.0853913", stats.StandardError)
	}
}

func TestComputeStatistics_SingleReading(t *testing.T) {
	ms, err := measure.NewMeasurementSet([]float64{42.5})
	if err != nil {
		t.Fatalf("NewMeasurementSet: %v", err)
	}

	stats, err := ComputeStatistics(ms)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}
	if stats.Mean != 42.5 || stats.SampleStdDev != 0 || stats.StandardError != 0 {
		t.Errorf("unexpected stats for single reading: %+v", stats)
	}
}

func TestComputeStatistics_JitteredSetIsConsistent(t *testing.T) {
	values := testkit.Jittered(50, 100.0, 1.0, 42)
	ms, err := measure.NewMeasurementSet(values)
	if err != nil {
		t.Fatalf("NewMeasurementSet: %v", err)
	}

	stats, err := ComputeStatistics(ms)
	if err != nil {
		t.Fatalf("ComputeStatistics: %v", err)
	}

	if stats.Mean < 99 || stats.Mean > 101 {
		t.Errorf("Mean = %v, want within jitter bounds of 100", stats.Mean)
	}
	if stats.SampleStdDev <= 0 {
		t.Errorf("SampleStdDev = %v, want > 0 for jittered data", stats.SampleStdDev)
	}
	want := stats.SampleStdDev / math.Sqrt(50)
	if !approxEqual(stats.StandardError, want, 1e-15) {
		t.Errorf("StandardError = %v, want stddev/sqrt(N) = %v", stats.StandardError, want)
	}
}
