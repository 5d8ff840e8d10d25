package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	scilog "github.com/scistats/scistats/pkg/log"
	"github.com/scistats/scistats/stats/power"
)

var (
	ssPNull float64
	ssPAlt  float64
	ssAlpha float64
	ssPower float64

	sampleSizeCmd = &cobra.Command{
		Use:   "samplesize",
		Short: "Compute the per-group sample size for a two-proportion experiment",
		Long: `samplesize prints the number of observations each group of a one-sided
two-proportion z-test needs to detect a shift from the baseline conversion
rate to the alternative rate, at the given significance level and power.`,
		RunE: runSampleSize,
	}
)

func init() {
	sampleSizeCmd.Flags().Float64Var(&ssPNull, "p-null", 0.1, "baseline conversion rate under the null")
	sampleSizeCmd.Flags().Float64Var(&ssPAlt, "p-alt", 0.12, "conversion rate the test must detect")
	sampleSizeCmd.Flags().Float64Var(&ssAlpha, "alpha", 0.05, "type I error rate in (0, 1)")
	sampleSizeCmd.Flags().Float64Var(&ssPower, "power", 0.8, "desired power in (0, 1)")
}

func runSampleSize(cmd *cobra.Command, args []string) error {
	n, err := power.ExperimentSize(ssPNull, ssPAlt, ssAlpha, ssPower)
	if err != nil {
		return err
	}

	slog.Info("experiment sized",
		slog.String(scilog.OperationKey, scilog.OperationExperimentSize),
		slog.Int(scilog.SampleSizeKey, n),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
	return nil
}
