package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumSquaredDiff(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 2}
	assert.Equal(t, 9.0, SumSquaredDiff(a, b))
}

func TestSumSquaredDiffThreshold(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 2}

	// Threshold above the true value: exact sum returned.
	assert.Equal(t, 9.0, SumSquaredDiffThreshold(a, b, 100))

	// Threshold below the true value: returned value still exceeds t2.
	got := SumSquaredDiffThreshold(a, b, 1)
	assert.Greater(t, got, 1.0)
}

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, -5, 2}
	assert.Equal(t, 5.0, MaxAbsDiff(a, b))
}

func TestMaxAbsDiffThreshold(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, -5, 2}
	assert.Equal(t, 5.0, MaxAbsDiffThreshold(a, b, 100))
	assert.Greater(t, MaxAbsDiffThreshold(a, b, 2), 2.0)
}

func TestWeightedSumSquaredDiff(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{1, 1}
	// lambda^0 * 1 + lambda^1 * 1 = 1 + 0.5 = 1.5
	assert.InDelta(t, 1.5, WeightedSumSquaredDiff(a, b, 0.5), 1e-9)
}

func TestWeightedSumSquaredDiffThreshold(t *testing.T) {
	a := []float64{0, 0, 0, 0}
	b := []float64{10, 10, 10, 10}
	got := WeightedSumSquaredDiffThreshold(a, b, 0.5, 1)
	assert.Greater(t, got, 1.0)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite([]float64{1, 2, 3}))
	assert.False(t, Finite([]float64{1, math.NaN(), 3}))
	assert.False(t, Finite([]float64{1, math.Inf(1), 3}))
}
