// Package vector provides the low-level float64 distance kernels shared by
// every metric in pkg/atriametric.
//
// This package consolidates the accumulation loops used throughout the tree
// and searcher hot paths. Use these functions instead of writing new
// accumulation loops, so every metric early-exits the same way.
//
// Main Functions:
//   - SumSquaredDiff / SumSquaredDiffThreshold: squared L2 accumulation
//   - MaxAbsDiff / MaxAbsDiffThreshold: L-infinity accumulation
//   - WeightedSumSquaredDiff / WeightedSumSquaredDiffThreshold: decayed L2
package vector

import "math"

// SumSquaredDiff returns sum((a[i]-b[i])^2) over the full length of a and b.
// Callers must ensure len(a) == len(b); no bounds checking beyond Go's own
// slice indexing is performed on the hot path.
func SumSquaredDiff(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// SumSquaredDiffThreshold returns sum((a[i]-b[i])^2), aborting the
// accumulation early once the running total exceeds t2. When it aborts, the
// returned value is only guaranteed to be > t2, not the exact sum — callers
// comparing against t2 get the same answer either way, at a fraction of the
// work for far-apart vectors.
//
// t2 is expected to already be squared (the caller squares its threshold
// once, not per dimension).
func SumSquaredDiffThreshold(a, b []float64, t2 float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
		if sum > t2 {
			return sum
		}
	}
	return sum
}

// MaxAbsDiff returns max(|a[i]-b[i]|) over the full length of a and b.
func MaxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
	}
	return m
}

// MaxAbsDiffThreshold returns max(|a[i]-b[i]|), aborting early once the
// running max exceeds t. As with SumSquaredDiffThreshold, an aborted result
// is only guaranteed to be > t.
func MaxAbsDiffThreshold(a, b []float64, t float64) float64 {
	var m float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
		if m > t {
			return m
		}
	}
	return m
}

// WeightedSumSquaredDiff returns sum(lambda^i * (a[i]-b[i])^2) for i in
// [0, len(a)). lambda decays the contribution of later coordinates, matching
// the exponentially-weighted Euclidean metric used for delay-embedded time
// series where the first coordinates should dominate.
func WeightedSumSquaredDiff(a, b []float64, lambda float64) float64 {
	var sum, w float64 = 0, 1
	for i := range a {
		d := a[i] - b[i]
		sum += w * d * d
		w *= lambda
	}
	return sum
}

// WeightedSumSquaredDiffThreshold is WeightedSumSquaredDiff with the same
// early-exit contract as SumSquaredDiffThreshold.
func WeightedSumSquaredDiffThreshold(a, b []float64, lambda, t2 float64) float64 {
	var sum, w float64 = 0, 1
	for i := range a {
		d := a[i] - b[i]
		sum += w * d * d
		if sum > t2 {
			return sum
		}
		w *= lambda
	}
	return sum
}

// finite reports whether every coordinate of v is neither NaN nor infinite.
func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Finite reports whether every coordinate of v is a finite float64. Used by
// atriatree.Build to reject non-finite point data before construction.
func Finite(v []float64) bool {
	return finite(v)
}
