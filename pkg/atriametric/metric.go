// Package atriametric provides distance metrics over D-dimensional float64
// points, with an early-exit threshold variant required by the tree
// searcher's hot path.
//
// Required variants: Euclidean (L2), Chebyshev (L-infinity), and
// ExponentiallyWeightedEuclidean (decayed L2 for delay-embedded time
// series). SquaredEuclidean exists only for brute-force reference use — it
// must never back a Tree, since it violates the triangle inequality that
// the tree's pruning bounds depend on.
//
// Example Usage:
//
//	m := atriametric.Euclidean{}
//	d := m.Distance(a, b)
//	d = m.DistanceWithThreshold(a, b, 2.5) // early-exits once d would exceed 2.5
package atriametric

import (
	"math"

	"github.com/orneryd/atria/pkg/math/vector"
)

// Metric computes distances between two equal-length float64 points.
//
// DistanceWithThreshold returns the exact distance when it is <= t;
// otherwise it may return any value strictly greater than t. Callers use
// this to skip the remainder of an expensive accumulation once a partial
// result already proves the point is out of range.
type Metric interface {
	Distance(a, b []float64) float64
	DistanceWithThreshold(a, b []float64, t float64) float64
}

// Euclidean is the L2 metric: sqrt(sum((a[i]-b[i])^2)).
type Euclidean struct{}

// Distance returns the exact Euclidean distance between a and b.
func (Euclidean) Distance(a, b []float64) float64 {
	return math.Sqrt(vector.SumSquaredDiff(a, b))
}

// DistanceWithThreshold squares t once, accumulates with early exit on the
// squared sum, then takes a single sqrt. If the accumulation aborted early
// the returned value is still strictly greater than t, since sqrt is
// monotone.
func (Euclidean) DistanceWithThreshold(a, b []float64, t float64) float64 {
	return math.Sqrt(vector.SumSquaredDiffThreshold(a, b, t*t))
}

// Chebyshev is the L-infinity metric: max(|a[i]-b[i]|).
type Chebyshev struct{}

// Distance returns the exact Chebyshev distance between a and b.
func (Chebyshev) Distance(a, b []float64) float64 {
	return vector.MaxAbsDiff(a, b)
}

// DistanceWithThreshold exits the running max comparison as soon as it
// exceeds t.
func (Chebyshev) DistanceWithThreshold(a, b []float64, t float64) float64 {
	return vector.MaxAbsDiffThreshold(a, b, t)
}

// ExponentiallyWeightedEuclidean is sqrt(sum(lambda^i * (a[i]-b[i])^2)),
// where i ranges over coordinate index. Lambda decays the contribution of
// later coordinates, which for an atriapoints.TimeDelayEmbedded point
// (x[i], x[i+delay], ...) are the later samples of the series. Lambda
// must be in (0, 1].
type ExponentiallyWeightedEuclidean struct {
	Lambda float64
}

// NewExponentiallyWeightedEuclidean validates lambda and returns the metric.
func NewExponentiallyWeightedEuclidean(lambda float64) (ExponentiallyWeightedEuclidean, error) {
	if lambda <= 0 || lambda > 1 {
		return ExponentiallyWeightedEuclidean{}, Errorf(ErrInvalidLambda, "atriametric: lambda %g not in (0, 1]", lambda)
	}
	return ExponentiallyWeightedEuclidean{Lambda: lambda}, nil
}

// Distance returns the exact exponentially-weighted Euclidean distance.
func (m ExponentiallyWeightedEuclidean) Distance(a, b []float64) float64 {
	return math.Sqrt(vector.WeightedSumSquaredDiff(a, b, m.Lambda))
}

// DistanceWithThreshold is the early-exit variant of Distance.
func (m ExponentiallyWeightedEuclidean) DistanceWithThreshold(a, b []float64, t float64) float64 {
	return math.Sqrt(vector.WeightedSumSquaredDiffThreshold(a, b, m.Lambda, t*t))
}

// SquaredEuclidean is sum((a[i]-b[i])^2) — L2 without the final sqrt.
//
// Reference-only: it does NOT satisfy the triangle inequality that
// atriatree's pruning bounds rely on, so it must never be passed to
// atriatree.Build. It exists so a brute-force validator can compare
// against the tree's results without paying for a sqrt per comparison.
type SquaredEuclidean struct{}

// Distance returns the exact squared Euclidean distance between a and b.
func (SquaredEuclidean) Distance(a, b []float64) float64 {
	return vector.SumSquaredDiff(a, b)
}

// DistanceWithThreshold early-exits once the running sum exceeds t. Note t
// is compared directly, not squared — callers already working in squared
// distance units pass their threshold as-is.
func (SquaredEuclidean) DistanceWithThreshold(a, b []float64, t float64) float64 {
	return vector.SumSquaredDiffThreshold(a, b, t)
}
