package main

import (
	"github.com/spf13/cobra"

	scilog "github.com/scistats/scistats/pkg/log"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "scistats",
		Short: "Monte Carlo coverage checks and experiment planning",
		Long: `scistats estimates the empirical coverage of confidence interval
constructions by simulation and sizes experiments for a target power.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			scilog.SetupLogger(logLevel)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(sampleSizeCmd)
}
