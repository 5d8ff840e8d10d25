// Package scistats provides inferential-statistics building blocks for Go,
// designed for simulation studies, experiment design, and model evaluation.
//
// The library follows a scikit-learn-like API so that engineers coming from
// Python's statistics ecosystem can translate an analysis one-to-one: draw
// samples, construct confidence intervals, size an experiment, and inspect a
// fitted model, all with explicit error returns instead of exceptions.
//
// # Features
//
// - Monte Carlo coverage checking for confidence-interval constructions
// - Experiment sample-size calculation (two-proportion and one-sample)
// - Precision/recall and regression metrics with sklearn semantics
// - OLS regression with a regression-based route to a mean interval
// - Permutation feature importance and threshold-based selection
// - Reproducible sampling: every random path is seedable
//
// # Quick Start
//
// Estimate how often a 95% z-interval actually covers the true mean:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/scistats/scistats/stats/montecarlo"
//	)
//
//	func main() {
//	    checker, err := montecarlo.NewCoverageChecker(
//	        montecarlo.WithTrueMean(1000),
//	        montecarlo.WithTrueStd(50),
//	        montecarlo.WithSampleSize(50),
//	        montecarlo.WithConfidenceLevel(0.95),
//	        montecarlo.WithSeed(42),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    result, err := checker.EstimateCoverage(100000)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("empirical coverage: %.4f\n", result.Coverage)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - stats/interval: confidence-interval estimators
//   - stats/sampling: seedable distribution samplers
//   - stats/montecarlo: repeated-trial coverage checking
//   - stats/power: experiment sample-size calculation
//   - metrics: classification and regression metrics
//   - linear: ordinary least squares regression
//   - inspection: permutation importance and feature selection
//   - preprocessing: feature scaling
//   - visualize: gonum/plot renderings of the above
//
// All numerical kernels are built on gonum; quantiles of the normal and
// Student's t distributions are consumed from gonum/stat/distuv rather than
// reimplemented.
package scistats
