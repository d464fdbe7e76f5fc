// Package distance provides pairwise reductions between two series: p-norm
// distances and cosine similarity. All reductions are pure and stateless.
package distance

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty reports a nil or zero-length operand.
	ErrEmpty = errors.New("distance: empty series")

	// ErrLengthMismatch reports operands of different lengths.
	ErrLengthMismatch = errors.New("distance: length mismatch")

	// ErrZeroVector reports a zero-magnitude operand where a direction is
	// required.
	ErrZeroVector = errors.New("distance: zero magnitude vector")
)

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 1), nil
}

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

// Cosine returns the cosine similarity of a and b: 1 for parallel vectors,
// 0 for orthogonal, -1 for opposed. Both operands must have nonzero
// magnitude.
func Cosine(a, b []float64) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}
	return floats.Dot(a, b) / (na * nb), nil
}

func check(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmpty
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}
