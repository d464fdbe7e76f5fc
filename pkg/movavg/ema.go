package movavg

import "fmt"

// Exponential is a recursive smoother: each output blends the newest sample
// with the previous output by the smoothing factor alpha. Alpha close to 1
// tracks the input closely; close to 0 it smooths heavily.
type Exponential struct {
	period int
	alpha  float64
}

// NewExponential returns an Exponential whose smoothing factor is derived
// from the period as 2/(period+1).
func NewExponential(period int) (*Exponential, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidConfig, period)
	}
	return &Exponential{period: period, alpha: 2 / float64(period+1)}, nil
}

// NewExponentialWithAlpha returns an Exponential with an explicit smoothing
// factor in (0, 1].
func NewExponentialWithAlpha(period int, alpha float64) (*Exponential, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidConfig, period)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0, 1], got %g", ErrInvalidConfig, alpha)
	}
	return &Exponential{period: period, alpha: alpha}, nil
}

// Alpha returns the smoothing factor.
func (e *Exponential) Alpha() float64 { return e.alpha }

// Period returns the period the default smoothing factor derives from.
func (e *Exponential) Period() int { return e.period }

// Transform smooths xs recursively: out[0] = xs[0] and
//
//	out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
//
// Every position of the result is defined; a one-sample series smooths to
// itself.
func (e *Exponential) Transform(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	out := make([]float64, len(xs))
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = e.alpha*xs[i] + (1-e.alpha)*out[i-1]
	}
	return out, nil
}
