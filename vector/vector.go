// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"
)

// Number is the set of Go numeric types accepted by FromValues.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Vector is a fixed-length, mutable sequence of float64 values.
// The length is set at construction; data is never resized or shared with
// another Vector.
type Vector struct {
	data []float64 // owned backing storage
}

// New creates a Vector of length n with every element set to 0.0.
// A zero-length vector is valid.
// Returns ErrInvalidLength if n < 0.
// Complexity: O(n) time and memory.
func New(n int) (*Vector, error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, ErrInvalidLength)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// FromVector returns a deep copy of other with independent storage.
// A nil other yields an empty vector.
// Complexity: O(n).
func FromVector(other *Vector) *Vector {
	if other == nil {
		return &Vector{data: []float64{}}
	}
	data := make([]float64, len(other.data))
	copy(data, other.data)

	return &Vector{data: data}
}

// FromValues converts values to float64 in order and returns them as a
// Vector. The input slice is not retained.
// Complexity: O(n).
func FromValues[T Number](values []T) *Vector {
	data := make([]float64, len(values))
	for i, x := range values {
		data[i] = float64(x)
	}

	return &Vector{data: data}
}

// Of builds a Vector from an inline list of values:
//
//	v := vector.Of(1, 2, 3)
func Of(values ...float64) *Vector {
	return FromValues(values)
}

// Len returns the number of elements. A nil Vector has length 0.
// Complexity: O(1).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the i-th element.
// Returns ErrOutOfRange if i < 0 or i >= Len().
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, indexErrorf(opAt, i, v.Len())
	}

	return v.data[i], nil
}

// Set assigns x to the i-th element.
// Returns ErrOutOfRange if i < 0 or i >= Len().
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.Len() {
		return indexErrorf(opSet, i, v.Len())
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy of v. Equivalent to FromVector(v).
func (v *Vector) Clone() *Vector {
	return FromVector(v)
}

// Values returns a copy of the elements as a plain slice.
func (v *Vector) Values() []float64 {
	out := make([]float64, v.Len())
	if v != nil {
		copy(out, v.data)
	}

	return out
}

// String renders v as "[e0, e1, ..., en-1]" using the shortest decimal
// representation of each element. An empty vector renders as "[]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v.data[i], 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}
