// SPDX-License-Identifier: MIT

package vector

import "math"

// Sum returns the elementwise sum of vs as a left fold with Add, seeded from
// a copy of vs[0]. The result never aliases an input.
//
// Errors:
//   - ErrEmptyInput if vs is empty.
//   - ErrNilVector if any element is nil.
//   - ErrDimensionMismatch if lengths differ.
//
// Complexity: O(len(vs)·n) time, O(n) memory per step.
func Sum(vs []*Vector) (*Vector, error) {
	if len(vs) == 0 {
		return nil, vectorErrorf(opSum, ErrEmptyInput)
	}
	if vs[0] == nil {
		return nil, vectorErrorf(opSum, ErrNilVector)
	}

	acc := vs[0].Clone()
	var err error
	for _, x := range vs[1:] {
		if acc, err = acc.Add(x); err != nil {
			return nil, vectorErrorf(opSum, err)
		}
	}

	return acc, nil
}

// Mean returns v.Sum() / v.Len().
// A zero-length (or nil) vector yields NaN, not an error.
func Mean(v *Vector) float64 {
	return v.Sum() / float64(v.Len())
}

// Norm returns the L2 norm sqrt(Σ v[i]²).
func Norm(v *Vector) float64 {
	return math.Sqrt(v.Map(square).Sum())
}

// EuclideanDistance returns the L2 distance between x and y, i.e. Norm(x - y).
// Returns ErrDimensionMismatch if lengths differ, ErrNilVector on nil operands.
func EuclideanDistance(x, y *Vector) (float64, error) {
	diff, err := x.Sub(y)
	if err != nil {
		return 0, vectorErrorf(opEuclidean, err)
	}

	return Norm(diff), nil
}

// Argmin returns the index of the smallest element, scanning left to right
// with strict '<' from an initial candidate of math.MaxFloat64, so ties keep
// the first occurrence.
// Returns -1 for an empty vector. Elements that are never below
// math.MaxFloat64 (+Inf, NaN) are never selected, so a vector made only of
// them also yields -1.
func Argmin(v *Vector) int {
	minIdx, minVal := -1, math.MaxFloat64
	for i := 0; i < v.Len(); i++ {
		if v.data[i] < minVal {
			minIdx, minVal = i, v.data[i]
		}
	}

	return minIdx
}

// IsClose reports whether a and b are approximately equal:
//
//	|a-b| <= max(relTol * max(|a|, |b|), absTol)
//
// Defaults are DefaultRelTol and DefaultAbsTol. NaN is never close to
// anything, including NaN.
func IsClose(a, b float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return isClose(a, b, o)
}

func isClose(a, b float64, o Options) bool {
	return math.Abs(a-b) <= math.Max(o.relTol*math.Max(math.Abs(a), math.Abs(b)), o.absTol)
}

// IsCloseVector reports whether a and b have equal length and every pair of
// corresponding elements is close. A length mismatch returns false
// immediately; the scan stops at the first pair that is not close.
// A nil vector compares as empty.
func IsCloseVector(a, b *Vector, opts ...Option) bool {
	return isCloseVector(a, b, gatherOptions(opts...))
}

func isCloseVector(a, b *Vector, o Options) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !isClose(a.data[i], b.data[i], o) {
			return false
		}
	}

	return true
}

// IsCloseVectors reports whether a and b have the same number of vectors and
// every corresponding pair satisfies IsCloseVector.
func IsCloseVectors(a, b []*Vector, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !isCloseVector(a[i], b[i], o) {
			return false
		}
	}

	return true
}

func square(x float64) float64 { return x * x }
