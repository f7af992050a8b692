package atriatree

import (
	"errors"
	"fmt"

	"github.com/orneryd/atria/internal/atriaerr"
)

// Sentinel errors returned by this package.
var (
	// ErrNilPoints indicates Build was called with a nil PointSet.
	ErrNilPoints = errors.New("atriatree: point set is nil")

	// ErrEmptyPointSet indicates Build was called with a PointSet of
	// length zero. An empty tree cannot be built; construction fails
	// rather than returning a usable-but-empty Tree.
	ErrEmptyPointSet = errors.New("atriatree: point set is empty")

	// ErrNilMetric indicates Build was called with a nil Metric.
	ErrNilMetric = errors.New("atriatree: metric is nil")

	// ErrSquaredMetric indicates Build was called with a metric known not
	// to satisfy the triangle inequality, which the tree's pruning bounds
	// depend on.
	ErrSquaredMetric = errors.New("atriatree: metric does not satisfy the triangle inequality")

	// ErrInvalidLeafThreshold names a non-positive leaf threshold. No
	// function in this package returns it: WithLeafThreshold panics on
	// such a value instead.
	ErrInvalidLeafThreshold = errors.New("atriatree: leaf threshold must be positive")

	// ErrCorruptTree is returned by Validate when a structural invariant
	// of the tree does not hold.
	ErrCorruptTree = errors.New("atriatree: tree invariant violated")

	// ErrNonFiniteCoordinate indicates a point contained a NaN or
	// infinite coordinate. Rejected at build time since the searcher's
	// triangle-inequality bounds are meaningless once a single distance
	// computation can produce NaN.
	ErrNonFiniteCoordinate = errors.New("atriatree: point contains a non-finite coordinate")
)

func errorf(kind atriaerr.Kind, sentinel error, format string, args ...any) error {
	return atriaerr.New(kind, fmt.Errorf(format+": %w", append(args, sentinel)...))
}
