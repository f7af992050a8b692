package atriasearch

import (
	"errors"
	"fmt"

	"github.com/orneryd/atria/internal/atriaerr"
)

// Sentinel errors returned by this package.
var (
	// ErrNilTree indicates a query was issued against a nil Tree.
	ErrNilTree = errors.New("atriasearch: tree is nil")

	// ErrDimensionMismatch indicates a query vector's length does not
	// match the tree's point dimension.
	ErrDimensionMismatch = errors.New("atriasearch: query dimension does not match tree dimension")

	// ErrInvalidK indicates a non-positive k was requested from a k-NN
	// query.
	ErrInvalidK = errors.New("atriasearch: k must be positive")

	// ErrNegativeRadius indicates a negative radius was passed to a range
	// or count-range query.
	ErrNegativeRadius = errors.New("atriasearch: radius must be non-negative")

	// ErrCapacityExceeded indicates the Context's pre-allocated priority
	// queue filled during a query. Context.PQCapacity must be sized for
	// the tree's shape; this is a real, terminal error rather than a
	// silent slice growth, since growth on the query hot path is exactly
	// what a pre-allocated Context exists to avoid.
	ErrCapacityExceeded = errors.New("atriasearch: priority queue capacity exceeded")

	// ErrIndexOutOfRange indicates a point index passed to KNNByIndex is
	// outside the tree's point range.
	ErrIndexOutOfRange = errors.New("atriasearch: point index out of range")
)

func errorf(kind atriaerr.Kind, sentinel error, format string, args ...any) error {
	return atriaerr.New(kind, fmt.Errorf(format+": %w", append(args, sentinel)...))
}
