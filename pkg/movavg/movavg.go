package movavg

import "errors"

// Transformer is the contract shared by all moving-average stages: it maps a
// raw series onto a smoothed series of the same length.
type Transformer interface {
	// Transform returns a newly allocated smoothed series. The input is
	// never mutated and no reference to it is retained.
	Transform(xs []float64) ([]float64, error)
}

var (
	// ErrInvalidConfig reports an unusable parameterization at construction
	// time.
	ErrInvalidConfig = errors.New("movavg: invalid configuration")

	// ErrInvalidInput reports a series the transform cannot be applied to:
	// nil, empty, or shorter than the minimum the window requires.
	ErrInvalidInput = errors.New("movavg: invalid input series")
)

var (
	_ Transformer = (*Simple)(nil)
	_ Transformer = (*Exponential)(nil)
	_ Transformer = (*Weighted)(nil)
)
