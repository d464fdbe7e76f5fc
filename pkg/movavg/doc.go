// Package movavg provides moving-average smoothing stages for numeric series.
//
// Three transforms implement the Transformer contract: Simple (fixed-window
// arithmetic mean, maintained incrementally), Exponential (single-factor
// recursive smoothing), and Weighted (fixed-window weighted sum with
// caller-supplied normalized weights).
//
// Each transform validates its parameters at construction and its input at
// invocation. Configuration is immutable afterwards and no state is carried
// between calls, so one transform may be applied to different series from
// different goroutines without synchronization.
//
//	sma, err := movavg.NewSimple(3)
//	if err != nil {
//		return err
//	}
//	out, err := sma.Transform([]float64{1, 2, 3, 4, 5, 6})
//	// out: [0 0 2 3 4 5]
//
// Window-based transforms emit 0.0 for leading positions that lack enough
// history; Exponential defines every position, seeding with the first sample.
package movavg
