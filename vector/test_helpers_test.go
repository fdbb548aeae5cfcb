// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (seeded RNG, fail-fast wrappers).

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/animl/vector"
)

// propertyTrials is the number of random cases per property test.
const propertyTrials = 500

// newRand returns a deterministic RNG so property failures are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(20170417))
}

// MustNew allocates a zero vector of length n or fails the test.
func MustNew(t testing.TB, n int) *vector.Vector {
	t.Helper()
	v, err := vector.New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// MustAt reads v[i] or fails the test.
func MustAt(t testing.TB, v *vector.Vector, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}

	return x
}

// randVector returns a length-n vector with elements uniform in [-100, 100).
func randVector(r *rand.Rand, n int) *vector.Vector {
	data := make([]float64, n)
	for i := range data {
		data[i] = r.Float64()*200 - 100
	}

	return vector.FromValues(data)
}

// randPair returns two random vectors of the same random length in [1, 32].
func randPair(r *rand.Rand) (*vector.Vector, *vector.Vector) {
	n := 1 + r.Intn(32)

	return randVector(r, n), randVector(r, n)
}
