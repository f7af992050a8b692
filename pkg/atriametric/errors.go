package atriametric

import (
	"errors"
	"fmt"

	"github.com/orneryd/atria/internal/atriaerr"
)

// Sentinel errors returned by this package.
var (
	// ErrDimensionMismatch indicates two points passed to a Metric have
	// different lengths.
	ErrDimensionMismatch = errors.New("atriametric: dimension mismatch")

	// ErrInvalidLambda indicates a decay parameter outside (0, 1] was
	// passed to NewExponentiallyWeightedEuclidean.
	ErrInvalidLambda = errors.New("atriametric: lambda must be in (0, 1]")
)

// Errorf wraps a sentinel with a formatted message and an atriaerr.Kind, so
// callers can both errors.Is against the sentinel and atriaerr.KindOf the
// coarse taxonomy bucket.
func Errorf(sentinel error, format string, args ...any) error {
	return atriaerr.New(atriaerr.InvalidArgument, fmt.Errorf(format+": %w", append(args, sentinel)...))
}
