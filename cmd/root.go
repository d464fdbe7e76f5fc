/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ivannovs/tsmooth/pkg/tsmooth"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsmooth",
	Short: "Smooth a numeric series with moving averages",
	Long: `tsmooth loads one numeric column from a CSV file, smooths it with a
simple, an exponential, and a weighted moving average, and reports how each
smoothed series tracks the raw input: trailing-window trend fit, residual
spread, and distance figures. The smoothed columns can be written back out
for plotting.`,
	Run: tsmooth.Root(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tsmooth.yaml)")
	rootCmd.PersistentFlags().String("input", "", "path of the input CSV file")
	rootCmd.PersistentFlags().String("column", "value", "name of the value column")
	rootCmd.PersistentFlags().Bool("has-header", true, "input file starts with a header row")
	rootCmd.PersistentFlags().String("delimiter", ",", "input field delimiter")
	rootCmd.PersistentFlags().Int("sma-period", 10, "simple moving average window size")
	rootCmd.PersistentFlags().Int("ema-period", 10, "exponential moving average period")
	rootCmd.PersistentFlags().Float64("ema-alpha", 0, "explicit smoothing factor in (0,1], 0 derives 2/(period+1)")
	rootCmd.PersistentFlags().Int("wma-period", 10, "weighted moving average window size for the default linear weights")
	rootCmd.PersistentFlags().Float64Slice("wma-weights", nil, "explicit weight vector, oldest first, must sum to 1.0")
	rootCmd.PersistentFlags().Int("trend-window", 20, "trailing window size for the trend fit")
	rootCmd.PersistentFlags().Float64("quantile", 0.9, "quantile of absolute fit residuals to report")
	rootCmd.PersistentFlags().String("output", "", "optional CSV file for the smoothed columns")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tsmooth" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tsmooth")
	}

	godotenv.Load()
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
