package tsmooth

import (
	"fmt"
	"io"

	"github.com/ivannovs/tsmooth/pkg/distance"
	"github.com/ivannovs/tsmooth/pkg/stats"
)

// Evaluation summarizes how a smoothed series relates to its raw input.
type Evaluation struct {
	Stage     string
	Defined   int // index of the first computed output position
	Slope     float64
	Intercept float64
	Spread    float64
	Residual  float64
	Manhattan float64
	Euclidean float64
	Cosine    float64
}

// Evaluate fits a trailing-window trend to the smoothed series and measures
// its residuals and distances against the raw input, starting at the first
// defined position.
func Evaluate(stage string, raw, smoothed []float64, defined, trendWindow int, pct float64) (*Evaluation, error) {
	if len(raw) != len(smoothed) {
		return nil, fmt.Errorf("evaluate %s: length mismatch: %d vs %d", stage, len(raw), len(smoothed))
	}
	if defined < 0 || len(smoothed)-defined < 2 {
		return nil, fmt.Errorf("evaluate %s: %d computed samples, need at least 2", stage, len(smoothed)-defined)
	}

	size := trendWindow
	if n := len(smoothed) - defined; size > n {
		size = n
	}
	win, err := stats.NewWindow(size)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", stage, err)
	}
	win.Feed(smoothed[defined:])
	intercept, slope := win.LinearRegression()
	spread := win.QuantileSpread(pct)

	residual, err := stats.ResidualStdDev(raw, smoothed, defined)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", stage, err)
	}

	man, err := distance.Manhattan(raw[defined:], smoothed[defined:])
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", stage, err)
	}
	euc, err := distance.Euclidean(raw[defined:], smoothed[defined:])
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", stage, err)
	}
	cos, err := distance.Cosine(raw[defined:], smoothed[defined:])
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", stage, err)
	}

	return &Evaluation{
		Stage:     stage,
		Defined:   defined,
		Slope:     slope,
		Intercept: intercept,
		Spread:    spread,
		Residual:  residual,
		Manhattan: man,
		Euclidean: euc,
		Cosine:    cos,
	}, nil
}

func printEvaluation(w io.Writer, title string, ev *Evaluation) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "  defined from      %12d\n", ev.Defined)
	fmt.Fprintf(w, "  trend slope       %12.6f\n", ev.Slope)
	fmt.Fprintf(w, "  trend intercept   %12.6f\n", ev.Intercept)
	fmt.Fprintf(w, "  fit spread        %12.6f\n", ev.Spread)
	fmt.Fprintf(w, "  residual stddev   %12.6f\n", ev.Residual)
	fmt.Fprintf(w, "  manhattan         %12.6f\n", ev.Manhattan)
	fmt.Fprintf(w, "  euclidean         %12.6f\n", ev.Euclidean)
	fmt.Fprintf(w, "  cosine            %12.6f\n", ev.Cosine)
}
