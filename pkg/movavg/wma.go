package movavg

import (
	"fmt"
	"math"
)

// Weight vectors must sum to 1 within this tolerance.
const weightSumTolerance = 1e-2

// Weighted is a fixed-window weighted-sum smoother. Weights are aligned
// oldest-first: weights[0] applies to the oldest sample in the window, and
// the window for output position i is xs[i-len(weights) .. i-1].
type Weighted struct {
	weights []float64
}

// NewWeighted returns a Weighted holding a copy of the given weight vector.
// The vector must be non-empty and sum to 1.0 within 1e-2.
func NewWeighted(weights []float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight vector", ErrInvalidConfig)
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return nil, fmt.Errorf("%w: weights sum to %g, want 1.0 within %g", ErrInvalidConfig, sum, weightSumTolerance)
	}
	ws := make([]float64, len(weights))
	copy(ws, weights)
	return &Weighted{weights: ws}, nil
}

// Weights returns a copy of the weight vector.
func (w *Weighted) Weights() []float64 {
	ws := make([]float64, len(w.weights))
	copy(ws, w.weights)
	return ws
}

// Transform smooths xs with the weighted window sum
//
//	out[i] = sum_k xs[i-n+k] * weights[k]    for i in [n, len(xs))
//
// where n = len(weights). The first n positions are 0.0. The series must be
// longer than the weight vector so at least one position is computed.
func (w *Weighted) Transform(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	n := len(w.weights)
	if len(xs) <= n {
		return nil, fmt.Errorf("%w: %d samples, window needs more than %d", ErrInvalidInput, len(xs), n)
	}

	out := make([]float64, len(xs))
	for i := n; i < len(xs); i++ {
		win := xs[i-n : i]
		acc := 0.0
		for k, wk := range w.weights {
			acc += win[k] * wk
		}
		out[i] = acc
	}
	return out, nil
}

// UniformWeights returns n equal weights of 1/n: the plain moving average
// expressed as a weight profile.
func UniformWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = 1 / float64(n)
	}
	return ws
}

// LinearWeights returns n weights rising linearly from oldest to newest,
// k/(n(n+1)/2) for k = 1..n.
func LinearWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	norm := float64(n*(n+1)) / 2
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = float64(i+1) / norm
	}
	return ws
}
