// Package atriapoints provides the PointSet contract that atriatree and
// atriasearch build and query against, plus the two concrete
// implementations required: a dense column-major point set, and a
// time-delay embedding over a single scalar series.
package atriapoints

// PointSet is a fixed collection of N points, each a vector in R^Dim. A
// PointSet is read-only and safe to share across concurrent queries (and
// across KNNBatch's WithParallel workers): Point(i) must never mutate
// state any other call or goroutine could observe.
//
// Point(i) may return a slice that aliases internal storage — Dense
// always does, and this is what lets it hand back a zero-copy column
// view on the query hot path. Callers that need to hold onto such a
// point past the next call into the same PointSet must copy it first.
// TimeDelayEmbedded never aliases shared mutable state: see its own doc
// comment for how it reconciles zero-copy access with concurrent use.
type PointSet interface {
	// Dim returns the dimensionality of every point in the set.
	Dim() int
	// Len returns the number of points, N.
	Len() int
	// Point returns the point at index i, in [0, Len()).
	Point(i int) []float64
}
