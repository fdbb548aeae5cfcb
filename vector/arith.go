// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Elementwise arithmetic and reductions on *Vector.
//
// Contract:
//   - Every arithmetic method allocates a fresh result; operands are never
//     mutated and never aliased by the result.
//   - Loops run over increasing index (0..n-1), so Sum and Dot round the same
//     way on every platform.
//   - No guards on x/0 or NaN: IEEE-754 semantics propagate unchanged.

package vector

// checkOperands validates a binary elementwise operation.
// Stage 1: nil-checks. Stage 2: length match.
func checkOperands(tag string, a, b *Vector) error {
	if a == nil || b == nil {
		return vectorErrorf(tag, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return mismatchErrorf(tag, len(a.data), len(b.data))
	}

	return nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub to keep validation and allocation in one place.
func addSub(tag string, a, b *Vector, sign float64) (*Vector, error) {
	if err := checkOperands(tag, a, b); err != nil {
		return nil, err
	}
	out := &Vector{data: make([]float64, len(a.data))}
	if sign > 0 {
		for i, x := range a.data {
			out.data[i] = x + b.data[i]
		}
	} else {
		for i, x := range a.data {
			out.data[i] = x - b.data[i]
		}
	}

	return out, nil
}

// Add returns the elementwise sum v + other.
// Returns ErrDimensionMismatch if lengths differ, ErrNilVector on nil operands.
// Complexity: O(n) time and memory.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	return addSub(opAdd, v, other, +1)
}

// Sub returns the elementwise difference v - other.
// Returns ErrDimensionMismatch if lengths differ, ErrNilVector on nil operands.
// Complexity: O(n) time and memory.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	return addSub(opSub, v, other, -1)
}

// apply is the unary kernel behind Scale, DivScalar, Negate and Map.
// A nil receiver yields an empty vector.
func (v *Vector) apply(fn func(float64) float64) *Vector {
	out := &Vector{data: make([]float64, v.Len())}
	for i := range out.data {
		out.data[i] = fn(v.data[i])
	}

	return out
}

// Scale returns v with every element multiplied by s.
func (v *Vector) Scale(s float64) *Vector {
	return v.apply(func(x float64) float64 { return x * s })
}

// DivScalar returns v with every element divided by s.
// s == 0 is not special-cased: elements become ±Inf or NaN.
func (v *Vector) DivScalar(s float64) *Vector {
	return v.apply(func(x float64) float64 { return x / s })
}

// Negate returns v with every sign flipped.
func (v *Vector) Negate() *Vector {
	return v.apply(func(x float64) float64 { return -x })
}

// Map returns a new vector whose i-th element is fn(v[i]).
// fn is called once per element, in index order.
func (v *Vector) Map(fn func(float64) float64) *Vector {
	return v.apply(fn)
}

// Dot returns the sum of elementwise products, accumulated left to right.
// Returns ErrDimensionMismatch if lengths differ, ErrNilVector on nil operands.
// Complexity: O(n) time, O(1) memory.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := checkOperands(opDot, v, other); err != nil {
		return 0, err
	}
	var sum float64
	for i, x := range v.data {
		sum += x * other.data[i]
	}

	return sum, nil
}

// Sum returns the left-to-right sum of all elements (0 for an empty vector).
func (v *Vector) Sum() float64 {
	var sum float64
	for i := 0; i < v.Len(); i++ {
		sum += v.data[i]
	}

	return sum
}

// IsClose reports whether v and other have equal length and every pair of
// elements satisfies IsClose. See IsCloseVector.
func (v *Vector) IsClose(other *Vector, opts ...Option) bool {
	return IsCloseVector(v, other, opts...)
}
