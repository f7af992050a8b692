package atriametric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclideanDistance(t *testing.T) {
	m := Euclidean{}
	a := []float64{0, 0}
	b := []float64{3, 4}
	assert.Equal(t, 5.0, m.Distance(a, b))
}

func TestEuclideanDistanceWithThreshold(t *testing.T) {
	m := Euclidean{}
	a := []float64{0, 0}
	b := []float64{3, 4}

	assert.Equal(t, 5.0, m.DistanceWithThreshold(a, b, 10))
	assert.Greater(t, m.DistanceWithThreshold(a, b, 1), 1.0)
}

func TestChebyshevDistance(t *testing.T) {
	m := Chebyshev{}
	a := []float64{0, 0, 0}
	b := []float64{1, -7, 2}
	assert.Equal(t, 7.0, m.Distance(a, b))
	assert.Equal(t, 7.0, m.DistanceWithThreshold(a, b, 100))
}

func TestExponentiallyWeightedEuclidean(t *testing.T) {
	m, err := NewExponentiallyWeightedEuclidean(0.5)
	require.NoError(t, err)

	a := []float64{0, 0}
	b := []float64{1, 1}
	// sqrt(1*1 + 0.5*1) = sqrt(1.5)
	assert.InDelta(t, math.Sqrt(1.5), m.Distance(a, b), 1e-9)

	_, err = NewExponentiallyWeightedEuclidean(0)
	assert.ErrorIs(t, err, ErrInvalidLambda)

	_, err = NewExponentiallyWeightedEuclidean(1.5)
	assert.ErrorIs(t, err, ErrInvalidLambda)
}

func TestSquaredEuclidean(t *testing.T) {
	m := SquaredEuclidean{}
	a := []float64{0, 0}
	b := []float64{3, 4}
	assert.Equal(t, 25.0, m.Distance(a, b))
	assert.Greater(t, m.DistanceWithThreshold(a, b, 1), 1.0)
}
