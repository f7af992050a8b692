package atriapoints

import (
	"errors"
	"fmt"

	"github.com/orneryd/atria/internal/atriaerr"
)

// Sentinel errors returned by this package's constructors.
var (
	// ErrInvalidDimension indicates a non-positive dimension was requested.
	ErrInvalidDimension = errors.New("atriapoints: dimension must be positive")

	// ErrDataLengthMismatch indicates a flat data slice's length does not
	// match the declared dimension and count.
	ErrDataLengthMismatch = errors.New("atriapoints: data length does not match dimension and count")

	// ErrEmptyPointSet indicates a point set with zero points was supplied
	// where at least one is required.
	ErrEmptyPointSet = errors.New("atriapoints: point set is empty")

	// ErrSeriesTooShort indicates the underlying series has too few
	// samples to produce even a single embedded point at the requested
	// dimension and delay.
	ErrSeriesTooShort = errors.New("atriapoints: series too short for the requested embedding")

	// ErrInvalidDelay indicates a non-positive delay was requested for a
	// time-delay embedding.
	ErrInvalidDelay = errors.New("atriapoints: delay must be positive")
)

func errorf(sentinel error, format string, args ...any) error {
	return atriaerr.New(atriaerr.InvalidArgument, fmt.Errorf(format+": %w", append(args, sentinel)...))
}
