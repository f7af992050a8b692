// Package atriaerr defines the coarse error-kind taxonomy shared by every
// ATRIA package (metric, pointset, tree, search): a typed Kind a caller
// can switch on across package boundaries, without giving up
// errors.Is/errors.As against the specific sentinel.
package atriaerr

import (
	"errors"
	"fmt"
)

// Kind classifies an ATRIA error into one of a small set of coarse
// buckets, independent of which package raised it.
type Kind int

const (
	// Unknown is returned by KindOf for errors not produced by this package.
	Unknown Kind = iota
	// InvalidArgument covers k <= 0, radius < 0, a negative leaf threshold,
	// or a query/point-set dimension mismatch.
	InvalidArgument
	// InvalidData covers a non-finite (NaN or infinite) coordinate found in
	// a point set at tree-build time.
	InvalidData
	// EmptyPointSet covers building a tree over zero points.
	EmptyPointSet
	// CapacityExceeded covers a pre-allocated Context priority queue sized
	// smaller than the query requires. The neighbor heap never raises it;
	// it grows to the requested k instead.
	CapacityExceeded
)

// String renders the Kind's name.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidData:
		return "InvalidData"
	case EmptyPointSet:
		return "EmptyPointSet"
	case CapacityExceeded:
		return "CapacityExceeded"
	default:
		return "Unknown"
	}
}

// kindError pairs a wrapped sentinel error with its taxonomy Kind.
type kindError struct {
	kind Kind
	err  error
}

// New wraps err with the given Kind. The package-level sentinel errors
// (e.g. atriatree.ErrEmptyPointSet) remain reachable through errors.Is and
// errors.Unwrap; KindOf recovers the coarse classification.
func New(kind Kind, err error) error {
	return &kindError{kind: kind, err: err}
}

// Errorf is New with a formatted message wrapping err, following the
// "<subsystem>: %w" wrapping convention used throughout this module.
func Errorf(kind Kind, format string, args ...any) error {
	return &kindError{kind: kind, err: fmt.Errorf(format, args...)}
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// KindOf recovers the taxonomy Kind from an error produced by New/Errorf
// anywhere in its wrap chain. Returns Unknown if err was not produced by
// this package.
func KindOf(err error) Kind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return Unknown
}
