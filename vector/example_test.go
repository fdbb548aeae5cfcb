// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/animl/vector"
)

func ExampleOf() {
	v := vector.Of(1, 2, 3)
	w := v.Scale(2)
	fmt.Println(v, w)
	// Output:
	// [1, 2, 3] [2, 4, 6]
}

func ExampleNew() {
	v, err := vector.New(3)
	if err != nil {
		panic(err)
	}
	_ = v.Set(1, 0.5)
	fmt.Println(v)

	_, err = vector.New(-1)
	fmt.Println(errors.Is(err, vector.ErrInvalidLength))
	// Output:
	// [0, 0.5, 0]
	// true
}

func ExampleSum() {
	total, err := vector.Sum([]*vector.Vector{vector.Of(1, 2), vector.Of(3, 4)})
	if err != nil {
		panic(err)
	}
	fmt.Println(total, vector.Mean(total))
	// Output:
	// [4, 6] 5
}

func ExampleEuclideanDistance() {
	d, err := vector.EuclideanDistance(vector.Of(0, 0), vector.Of(3, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 5
}

// ExampleArgmin picks the nearest centroid to a point.
func ExampleArgmin() {
	point := vector.Of(1, 1)
	centroids := []*vector.Vector{vector.Of(5, 5), vector.Of(0, 1), vector.Of(1, 0)}

	dists, _ := vector.New(len(centroids))
	for i, c := range centroids {
		d, _ := vector.EuclideanDistance(point, c)
		_ = dists.Set(i, d)
	}
	fmt.Println(vector.Argmin(dists))
	// Output:
	// 1
}

func ExampleIsCloseVector() {
	tenth := 0.1
	a := vector.Of(tenth+0.2, 1) // 0.30000000000000004

	b := vector.Of(0.3, 1)
	fmt.Println(vector.IsCloseVector(a, b), vector.IsCloseVector(a, vector.Of(0.3)))
	// Output:
	// true false
}
