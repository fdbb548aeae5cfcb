// SPDX-License-Identifier: MIT

// Package vector provides a fixed-length float64 vector for numerical and
// machine-learning code.
//
// What:
//
//	Vector owns its elements; its length is set at construction by New, FromVector,
//	FromValues or Of. Elements change only through Set. Arithmetic (Add, Sub,
//	Scale, DivScalar, Negate, Map) always returns a new Vector.
//
//	Free functions cover reductions and comparisons: Sum (over a slice of vectors),
//	Mean, Norm, EuclideanDistance, Argmin and the IsClose family.
//
// Errors:
//
//	Sentinels (ErrDimensionMismatch, ErrOutOfRange, ErrInvalidLength, ErrEmptyInput,
//	ErrNilVector) are wrapped once with the operation name; match with errors.Is.
//	Division by zero and NaN follow IEEE-754 and are never reported as errors.
//
// Determinism:
//
//	Sum and Dot accumulate left to right over increasing index.
//
// Concurrency:
//
//	Concurrent reads of a Vector are safe. Set on a shared Vector needs external
//	synchronization.
//
// Interop:
//
//	VecDense and FromMatVector copy to and from gonum's mat package.
package vector
