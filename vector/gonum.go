// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/mat"

// VecDense copies v into a gonum column vector so it can be handed to
// gonum/mat routines. The result does not share storage with v.
// An empty (or nil) v yields an empty *mat.VecDense, since gonum rejects
// zero-length dimensions in mat.NewVecDense.
func (v *Vector) VecDense() *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(v.Len(), v.Values())
}

// FromMatVector copies any gonum mat.Vector (e.g. *mat.VecDense, a column
// view of a *mat.Dense) into a new Vector. A nil src yields an empty vector.
func FromMatVector(src mat.Vector) *Vector {
	if src == nil {
		return &Vector{data: []float64{}}
	}
	n := src.Len()
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = src.AtVec(i)
	}

	return &Vector{data: data}
}
