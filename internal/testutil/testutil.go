// Package testutil provides deterministic sample-domain and signal
// generators shared by the spline and response tests.
package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced abscissa values from start to stop
// inclusive. n must be at least 2.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// SineOver evaluates a sinusoid of the given wavelength and amplitude at
// each abscissa position.
func SineOver(x []float64, wavelength, amplitude float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amplitude * math.Sin(2*math.Pi*v/wavelength)
	}
	return out
}

// NoiseOver returns seeded uniform noise in [-amplitude, amplitude], one
// value per abscissa position. The same seed always yields the same noise.
func NoiseOver(x []float64, seed int64, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(x))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant returns a slice of n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// RMS returns the root-mean-square of the signal, or 0 for an empty slice.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	var sum float64
	for _, v := range signal {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(signal)))
}

// MaxAbsDiff returns the maximum absolute elementwise difference between
// two equal-length slices.
func MaxAbsDiff(a, b []float64) float64 {
	var maxDiff float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
