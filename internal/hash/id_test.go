package hash

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValuesDeterministic(t *testing.T) {
	vals := []float64{1.5, -2.25, 0, math.NaN(), 1e300}

	require.Equal(t, Values(vals), Values(vals))
}

func TestValuesDistinguishesContent(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 4}
	require.NotEqual(t, Values(a), Values(b))

	// Order matters.
	c := []float64{3, 2, 1}
	require.NotEqual(t, Values(a), Values(c))
}

func TestValuesLargeSlice(t *testing.T) {
	// Spans several internal buffer flushes.
	rng := rand.New(rand.NewSource(7))
	vals := make([]float64, 10000)
	for i := range vals {
		vals[i] = rng.Float64()
	}

	sum := Values(vals)
	require.Equal(t, sum, Values(vals))

	vals[9999] += 1
	require.NotEqual(t, sum, Values(vals))
}

func BenchmarkValues(b *testing.B) {
	vals := make([]float64, 560*512)
	for i := range vals {
		vals[i] = float64(i % 100)
	}
	b.ResetTimer()
	for b.Loop() {
		Values(vals)
	}
}
