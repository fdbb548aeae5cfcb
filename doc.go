// Package animl is the root of a small collection of numeric building blocks
// for machine-learning code written in plain Go.
//
// Subpackages:
//
//	vector/ — fixed-length float64 Vector: elementwise arithmetic, dot product,
//	          L2 norm, Euclidean distance, mean, argmin and approximate equality
//
// Everything is in-memory and synchronous. Operations report misuse
// (dimension mismatch, bad index, negative length, empty input) through
// sentinel errors matched with errors.Is; floating-point edge cases follow
// IEEE-754 and are never turned into errors.
//
// Quick start:
//
//	a := vector.Of(0, 0)
//	b := vector.Of(3, 4)
//	d, err := vector.EuclideanDistance(a, b) // 5, nil
//
//	go get github.com/katalvlaran/animl/vector
package animl
