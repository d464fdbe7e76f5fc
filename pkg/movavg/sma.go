package movavg

import "fmt"

// Simple is a fixed-window arithmetic-mean smoother. The window mean is
// maintained incrementally, one update per sample, so a full pass costs O(n)
// regardless of the period.
type Simple struct {
	period int
}

// NewSimple returns a Simple with the given window size.
func NewSimple(period int) (*Simple, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidConfig, period)
	}
	return &Simple{period: period}, nil
}

// Period returns the window size.
func (s *Simple) Period() int { return s.period }

// Transform smooths xs with the rolling window mean. Positions 0..period-2
// of the result are 0.0 (insufficient history), position period-1 holds the
// mean of the first period samples, and each later position i holds
//
//	out[i] = out[i-1] + (xs[i] - xs[i-period]) / period
//
// The series must hold at least period samples; exactly period samples yield
// the seed mean alone.
func (s *Simple) Transform(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	if len(xs) < s.period {
		return nil, fmt.Errorf("%w: %d samples, window needs %d", ErrInvalidInput, len(xs), s.period)
	}

	out := make([]float64, len(xs))
	sum := 0.0
	for _, x := range xs[:s.period] {
		sum += x
	}
	avg := sum / float64(s.period)
	out[s.period-1] = avg
	for i := s.period; i < len(xs); i++ {
		avg += (xs[i] - xs[i-s.period]) / float64(s.period)
		out[i] = avg
	}
	return out, nil
}
