package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	scilog "github.com/scistats/scistats/pkg/log"
	"github.com/scistats/scistats/stats/montecarlo"
)

var (
	covMean       float64
	covStd        float64
	covSampleSize int
	covConfidence float64
	covTrials     int
	covSeed       uint64
	covUseT       bool

	coverageCmd = &cobra.Command{
		Use:   "coverage",
		Short: "Estimate the empirical coverage of a confidence interval construction",
		Long: `coverage repeatedly draws samples from a normal population with the
given mean and standard deviation, builds a confidence interval from each
sample, and prints the fraction of intervals that contained the true mean.

For a well calibrated construction the printed fraction approaches the
requested confidence level as the trial count grows.`,
		RunE: runCoverage,
	}
)

func init() {
	coverageCmd.Flags().Float64Var(&covMean, "mean", 0, "true population mean")
	coverageCmd.Flags().Float64Var(&covStd, "std", 1, "true population standard deviation")
	coverageCmd.Flags().IntVar(&covSampleSize, "sample-size", 30, "observations drawn per trial")
	coverageCmd.Flags().Float64Var(&covConfidence, "confidence", 0.95, "nominal confidence level in (0, 1)")
	coverageCmd.Flags().IntVar(&covTrials, "trials", 100000, "number of simulation trials")
	coverageCmd.Flags().Uint64Var(&covSeed, "seed", 1, "base random seed")
	coverageCmd.Flags().BoolVar(&covUseT, "t-interval", false, "use the Student's t construction instead of z")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	checker, err := montecarlo.NewCoverageChecker(
		montecarlo.WithTrueMean(covMean),
		montecarlo.WithTrueStd(covStd),
		montecarlo.WithSampleSize(covSampleSize),
		montecarlo.WithConfidenceLevel(covConfidence),
		montecarlo.WithSeed(covSeed),
		montecarlo.WithTInterval(covUseT),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := checker.EstimateCoverage(covTrials)
	if err != nil {
		return err
	}

	slog.Info("coverage run finished",
		slog.String(scilog.OperationKey, scilog.OperationEstimateCoverage),
		slog.Int(scilog.TrialsKey, result.Trials),
		slog.Int(scilog.SampleSizeKey, covSampleSize),
		slog.Float64(scilog.ConfidenceKey, covConfidence),
		slog.Float64(scilog.CoverageKey, result.Coverage),
		slog.Int64(scilog.DurationMsKey, time.Since(start).Milliseconds()),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", result.Coverage)
	return nil
}
