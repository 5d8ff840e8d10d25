// Package montecarlo estimates the empirical coverage of a confidence
// interval construction by repeated simulation.
//
// Each trial draws a fresh sample from a known normal distribution, builds
// an interval from it, and records whether the true mean fell inside. Over
// many trials the hit fraction should converge to the nominal confidence
// level; a systematic gap indicates a miscalibrated construction.
package montecarlo

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/scistats/scistats/core/parallel"
	"github.com/scistats/scistats/pkg/errors"
	"github.com/scistats/scistats/stats/interval"
	"github.com/scistats/scistats/stats/sampling"
)

// Trials below this count run sequentially; the per-goroutine setup cost
// dominates for small runs.
const parallelThreshold = 2048

// CoverageChecker runs repeated draw-and-estimate trials against a known
// normal population.
type CoverageChecker struct {
	trueMean   float64
	trueStd    float64
	sampleSize int
	confidence float64
	seed       uint64
	useT       bool
}

// CoverageResult is the outcome of a coverage run.
type CoverageResult struct {
	Trials   int     // number of trials executed
	Hits     int     // trials whose interval contained the true mean
	Coverage float64 // Hits / Trials, in [0, 1]
}

// Option configures a CoverageChecker.
type Option func(*CoverageChecker)

// WithTrueMean sets the population mean (default 0).
func WithTrueMean(mu float64) Option {
	return func(c *CoverageChecker) {
		c.trueMean = mu
	}
}

// WithTrueStd sets the population standard deviation (default 1).
func WithTrueStd(sigma float64) Option {
	return func(c *CoverageChecker) {
		c.trueStd = sigma
	}
}

// WithSampleSize sets the per-trial sample size (default 30).
func WithSampleSize(n int) Option {
	return func(c *CoverageChecker) {
		c.sampleSize = n
	}
}

// WithConfidenceLevel sets the nominal confidence level (default 0.95).
func WithConfidenceLevel(confidence float64) Option {
	return func(c *CoverageChecker) {
		c.confidence = confidence
	}
}

// WithSeed sets the base random seed (default 1). Every trial derives its
// own source from this seed, so runs are reproducible regardless of how
// trials are scheduled across goroutines.
func WithSeed(seed uint64) Option {
	return func(c *CoverageChecker) {
		c.seed = seed
	}
}

// WithTInterval switches the interval construction from the z-based to the
// Student's t construction.
func WithTInterval(useT bool) Option {
	return func(c *CoverageChecker) {
		c.useT = useT
	}
}

// NewCoverageChecker creates a checker with the given options. The
// configuration is validated once here; RunTrial and EstimateCoverage
// cannot fail on parameters afterwards.
func NewCoverageChecker(options ...Option) (*CoverageChecker, error) {
	c := &CoverageChecker{
		trueMean:   0,
		trueStd:    1,
		sampleSize: 30,
		confidence: 0.95,
		seed:       1,
	}

	for _, opt := range options {
		opt(c)
	}

	if math.IsNaN(c.trueMean) || math.IsInf(c.trueMean, 0) {
		return nil, errors.NewValidationError("true_mean", "must be finite", c.trueMean)
	}
	if math.IsNaN(c.trueStd) || !(c.trueStd > 0) {
		return nil, errors.NewValidationError("true_std", "must be positive", c.trueStd)
	}
	if c.sampleSize < 2 {
		return nil, errors.NewValidationError("sample_size", "must be at least 2", c.sampleSize)
	}
	if math.IsNaN(c.confidence) || c.confidence <= 0 || c.confidence >= 1 {
		return nil, errors.NewValidationError("confidence", "must be in the open interval (0, 1)", c.confidence)
	}

	return c, nil
}

// RunTrial draws one sample from the configured population using src and
// returns the confidence interval built from it. Deterministic given the
// source state.
func (c *CoverageChecker) RunTrial(src rand.Source) (interval.Interval, error) {
	sampler, err := sampling.NewNormalSampler(c.trueMean, c.trueStd, src)
	if err != nil {
		return interval.Interval{}, err
	}

	sample, err := sampler.Sample(c.sampleSize)
	if err != nil {
		return interval.Interval{}, err
	}

	if c.useT {
		return interval.MeanIntervalT(sample, c.confidence)
	}
	return interval.MeanInterval(sample, c.confidence)
}

// EstimateCoverage runs numTrials independent trials and returns the
// fraction whose interval contained the true mean (inclusive bounds).
//
// Trials are independent, so large runs are chunked across CPUs. Each trial
// gets a source derived from the base seed and its own index, which keeps
// results identical between sequential and parallel execution. The first
// trial error aborts the whole run.
func (c *CoverageChecker) EstimateCoverage(numTrials int) (CoverageResult, error) {
	if numTrials < 1 {
		return CoverageResult{}, errors.NewValidationError("num_trials", "must be at least 1", numTrials)
	}

	var (
		hits   int
		mu     sync.Mutex
		runErr error
	)

	parallel.ParallelizeWithThreshold(numTrials, parallelThreshold, func(start, end int) {
		localHits := 0
		for t := start; t < end; t++ {
			src := rand.NewSource(c.trialSeed(t))
			iv, err := c.RunTrial(src)
			if err != nil {
				mu.Lock()
				if runErr == nil {
					runErr = errors.Wrapf(err, "trial %d failed", t)
				}
				mu.Unlock()
				return
			}
			if iv.Contains(c.trueMean) {
				localHits++
			}
		}
		mu.Lock()
		hits += localHits
		mu.Unlock()
	})

	if runErr != nil {
		return CoverageResult{}, runErr
	}

	return CoverageResult{
		Trials:   numTrials,
		Hits:     hits,
		Coverage: float64(hits) / float64(numTrials),
	}, nil
}

// EstimateCoverageSeries runs one coverage estimate per entry of
// trialCounts, reusing the checker's configuration. Useful for convergence
// plots of empirical coverage against the number of trials.
func (c *CoverageChecker) EstimateCoverageSeries(trialCounts []int) ([]CoverageResult, error) {
	if len(trialCounts) == 0 {
		return nil, errors.NewValidationError("trial_counts", "must not be empty", trialCounts)
	}
	results := make([]CoverageResult, len(trialCounts))
	for i, n := range trialCounts {
		res, err := c.EstimateCoverage(n)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

// trialSeed derives a per-trial seed from the base seed. SplitMix64-style
// mixing keeps adjacent trial streams uncorrelated.
func (c *CoverageChecker) trialSeed(trial int) uint64 {
	z := c.seed + uint64(trial)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// EstimateCoverage is the convenience form: it builds a checker for the
// given population and interval parameters and runs numTrials trials with
// the default seed.
func EstimateCoverage(trueMean, trueStd float64, sampleSize int, confidence float64, numTrials int) (float64, error) {
	checker, err := NewCoverageChecker(
		WithTrueMean(trueMean),
		WithTrueStd(trueStd),
		WithSampleSize(sampleSize),
		WithConfidenceLevel(confidence),
	)
	if err != nil {
		return 0, err
	}
	result, err := checker.EstimateCoverage(numTrials)
	if err != nil {
		return 0, err
	}
	return result.Coverage, nil
}
