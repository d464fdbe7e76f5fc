package tsmooth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ivannovs/tsmooth/pkg/dataset"
	"github.com/ivannovs/tsmooth/pkg/movavg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type stage struct {
	name      string
	defined   int
	transform movavg.Transformer
}

func Root() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		slogOpts := slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		if viper.GetBool("debug") {
			slogOpts.Level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slogOpts))
		slog.SetDefault(log)

		opts := dataset.DefaultOptions()
		opts.Column = viper.GetString("column")
		opts.HasHeader = viper.GetBool("has-header")
		if d := viper.GetString("delimiter"); d != "" {
			opts.Delimiter = []rune(d)[0]
		}
		input := viper.GetString("input")
		if input == "" {
			errChk(errors.New("no input file given"))
		}
		xs, err := dataset.Load(input, opts)
		errChk(err)
		slog.Info("loaded series", "file", input, "column", opts.Column, "samples", len(xs))

		stages := buildStages()

		outs := make([][]float64, len(stages))
		var g errgroup.Group
		for i, st := range stages {
			g.Go(func() error {
				out, err := st.transform.Transform(xs)
				if err != nil {
					return fmt.Errorf("%s: %w", st.name, err)
				}
				outs[i] = out
				slog.Debug("transform complete", "stage", st.name, "samples", len(out))
				return nil
			})
		}
		errChk(g.Wait())

		trendWindow := viper.GetInt("trend-window")
		pct := viper.GetFloat64("quantile")
		caser := cases.Title(language.English)
		for i, st := range stages {
			ev, err := Evaluate(st.name, xs, outs[i], st.defined, trendWindow, pct)
			errChk(err)
			printEvaluation(os.Stdout, caser.String(st.name), ev)
		}

		if output := viper.GetString("output"); output != "" {
			header := make([]string, 0, len(stages)+1)
			cols := make([][]float64, 0, len(stages)+1)
			header = append(header, "raw")
			cols = append(cols, xs)
			for i, st := range stages {
				header = append(header, st.name)
				cols = append(cols, outs[i])
			}
			errChk(dataset.Save(output, header, cols))
			slog.Info("wrote smoothed columns", "file", output, "columns", len(cols))
		}
	}
}

func buildStages() []stage {
	smaPeriod := viper.GetInt("sma-period")
	sma, err := movavg.NewSimple(smaPeriod)
	errChk(err)

	var ema *movavg.Exponential
	if alpha := viper.GetFloat64("ema-alpha"); alpha != 0 {
		ema, err = movavg.NewExponentialWithAlpha(viper.GetInt("ema-period"), alpha)
	} else {
		ema, err = movavg.NewExponential(viper.GetInt("ema-period"))
	}
	errChk(err)

	weights := viper.GetFloat64Slice("wma-weights")
	if len(weights) == 0 {
		weights = movavg.LinearWeights(viper.GetInt("wma-period"))
	}
	wma, err := movavg.NewWeighted(weights)
	errChk(err)

	return []stage{
		{name: "simple", defined: smaPeriod - 1, transform: sma},
		{name: "exponential", defined: 0, transform: ema},
		{name: "weighted", defined: len(weights), transform: wma},
	}
}

func errChk(err error) {
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
