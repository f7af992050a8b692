package atriapoints

// TimeDelayEmbedded is a PointSet that views a single scalar series
// x[0..len(series)) as N = len(series) - (dim-1)*delay points in R^dim,
// point i being (x[i], x[i+delay], x[i+2*delay], ..., x[i+(dim-1)*delay]).
//
// When delay is 1 the embedding is contiguous in series, so Point(i) is a
// zero-copy slice exactly like Dense, aliasing series itself (read-only,
// so this is safe to share across concurrent queries same as Dense).
// For any other delay the coordinates are strided through series and Go
// has no way to express a strided view as a slice, so Point(i)
// materializes the point into a freshly allocated slice instead of a
// shared scratch buffer — a PointSet must be safe to call concurrently
// (queries and KNNBatch's WithParallel workers all share one *Tree, and
// hence one PointSet), and a reused buffer would let two goroutines
// calling Point concurrently overwrite each other's coordinates.
type TimeDelayEmbedded struct {
	series []float64
	dim    int
	delay  int
	n      int
}

// NewTimeDelayEmbedded builds a delay embedding of dimension dim and delay
// tau over series.
func NewTimeDelayEmbedded(series []float64, dim, delay int) (*TimeDelayEmbedded, error) {
	if dim <= 0 {
		return nil, errorf(ErrInvalidDimension, "atriapoints: got dim=%d", dim)
	}
	if delay <= 0 {
		return nil, errorf(ErrInvalidDelay, "atriapoints: got delay=%d", delay)
	}
	n := len(series) - (dim-1)*delay
	if n <= 0 {
		return nil, errorf(ErrSeriesTooShort, "atriapoints: len(series)=%d dim=%d delay=%d yields n=%d", len(series), dim, delay, n)
	}
	return &TimeDelayEmbedded{series: series, dim: dim, delay: delay, n: n}, nil
}

// Dim returns the embedding dimension.
func (e *TimeDelayEmbedded) Dim() int { return e.dim }

// Len returns the number of embedded points.
func (e *TimeDelayEmbedded) Len() int { return e.n }

// Point returns point i's coordinates. When delay != 1 this allocates a
// new slice per call — see the type doc comment for why it cannot reuse
// a shared buffer.
func (e *TimeDelayEmbedded) Point(i int) []float64 {
	if e.delay == 1 {
		return e.series[i : i+e.dim]
	}
	p := make([]float64, e.dim)
	for j := 0; j < e.dim; j++ {
		p[j] = e.series[i+j*e.delay]
	}
	return p
}
