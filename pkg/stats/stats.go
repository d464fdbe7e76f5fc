// Package stats provides trend statistics over series windows, backing the
// smoothing evaluation report.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Window holds the most recent size values of a series and fits them against
// the sample index 1..size.
type Window struct {
	size   int
	count  int
	values []float64
	x      []float64
	y      []float64
}

// NewWindow returns a Window over the given number of samples. Regression
// needs at least two.
func NewWindow(size int) (*Window, error) {
	if size < 2 {
		return nil, fmt.Errorf("stats: window size must be at least 2, got %d", size)
	}
	x := make([]float64, size)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return &Window{
		size:   size,
		values: make([]float64, size),
		x:      x,
		y:      make([]float64, size),
	}, nil
}

// Add pushes v as the newest value, discarding the oldest.
func (w *Window) Add(v float64) {
	w.values = append(w.values[1:], v)
	if w.count < w.size {
		w.count++
	}
}

// Feed pushes every sample of xs in order.
func (w *Window) Feed(xs []float64) {
	for _, v := range xs {
		w.Add(v)
	}
}

// Full reports whether at least size values have been pushed.
func (w *Window) Full() bool { return w.count >= w.size }

// Size returns the window length.
func (w *Window) Size() int { return w.size }

// LinearRegression fits the window against the sample index and returns the
// intercept and the per-sample slope.
func (w *Window) LinearRegression() (intercept, slope float64) {
	return stat.LinearRegression(w.x, w.values, nil, false)
}

// StdDev returns the standard deviation of the window.
func (w *Window) StdDev() float64 {
	return stat.StdDev(w.values, nil)
}

// QuantileSpread fits the window and returns the pct quantile of the
// absolute residuals around the fitted line.
func (w *Window) QuantileSpread(pct float64) float64 {
	b, m := w.LinearRegression()
	for i, v := range w.values {
		w.y[i] = math.Abs(v - (m*w.x[i] + b))
	}
	sort.Float64s(w.y)
	return stat.Quantile(pct, stat.Empirical, w.y, nil)
}

// ResidualStdDev returns the standard deviation of the pairwise residuals
// a[i]-b[i] for i >= from. Use from to skip positions without history.
func ResidualStdDev(a, b []float64, from int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("stats: length mismatch: %d vs %d", len(a), len(b))
	}
	if from < 0 || len(a)-from < 2 {
		return 0, fmt.Errorf("stats: need at least 2 residuals from index %d, have %d samples", from, len(a))
	}
	res := make([]float64, len(a)-from)
	for i := range res {
		res[i] = a[from+i] - b[from+i]
	}
	return stat.StdDev(res, nil), nil
}
