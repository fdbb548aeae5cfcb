// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (optionally wrapped once with the
// operation name); callers and tests match them via errors.Is.
// Floating-point edge cases (x/0, NaN propagation) are never errors.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned by New when a negative length is requested.
	ErrInvalidLength = errors.New("vector: invalid length")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths in an
	// elementwise binary operation (Add, Sub, Dot, Sum, EuclideanDistance).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmptyInput is returned by Sum over an empty slice: a left fold
	// without a seed has no identity vector to return.
	ErrEmptyInput = errors.New("vector: empty input")

	// ErrNilVector indicates that a nil *Vector was passed where an operand
	// is required.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation tags used when wrapping sentinels.
const (
	opNew       = "New"
	opAt        = "Vector.At"
	opSet       = "Vector.Set"
	opAdd       = "Vector.Add"
	opSub       = "Vector.Sub"
	opDot       = "Vector.Dot"
	opSum       = "Sum"
	opEuclidean = "EuclideanDistance"
)

// vectorErrorf wraps an underlying error with the given operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatchErrorf wraps ErrDimensionMismatch with both operand lengths.
func mismatchErrorf(tag string, n, m int) error {
	return fmt.Errorf("%s: %w (%d != %d)", tag, ErrDimensionMismatch, n, m)
}

// indexErrorf wraps ErrOutOfRange with the offending index and length.
func indexErrorf(tag string, i, n int) error {
	return fmt.Errorf("%s(%d): %w (len %d)", tag, i, ErrOutOfRange, n)
}
