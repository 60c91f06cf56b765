package testkit

import (
	"math/rand"
)

// Constant returns n identical readings. Useful for pinning the zero-spread
// convention (sample stddev 0, instrumental uncertainty only).
func Constant(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

// Jittered returns n readings centered on center with uniform spread, from a
// fixed seed so tests stay deterministic.
func Jittered(n int, center, spread float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = center + (rng.Float64()*2-1)*spread
	}
	return values
}
