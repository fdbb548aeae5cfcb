// SPDX-License-Identifier: MIT

// Package vector: functional configuration of the approximate-equality
// numeric policy used by IsClose, IsCloseVector and IsCloseVectors.
//
// Defaults follow the PEP-485 proposed algorithm:
//
//	|a-b| <= max(relTol * max(|a|, |b|), absTol)
//
// with relTol = 1e-9 and absTol = 0.
package vector

import "math"

// Numeric policy defaults.
const (
	// DefaultRelTol is the relative tolerance, scaled by the larger magnitude
	// of the two compared values.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute floor of the tolerance. Zero means values
	// near 0.0 must match exactly.
	DefaultAbsTol = 0.0
)

const (
	panicRelTolInvalid = "vector: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid = "vector: WithAbsTol: tolerance must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved tolerance policy. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	relTol float64 // >= 0; DefaultRelTol
	absTol float64 // >= 0; DefaultAbsTol
}

// WithRelTol sets the relative tolerance.
// Panics if tol is NaN, ±Inf or negative.
func WithRelTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithAbsTol sets the absolute tolerance floor, useful when comparing
// values close to zero.
// Panics if tol is NaN, ±Inf or negative.
func WithAbsTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// gatherOptions resolves defaults and applies user options in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		relTol: DefaultRelTol,
		absTol: DefaultAbsTol,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
