// Package interval constructs two-sided confidence intervals for a
// population mean from sample data.
//
// The critical values come from gonum's distuv quantile functions; the
// package never reimplements distribution internals. The sample standard
// deviation always uses Bessel's correction (division by n-1), matching
// gonum's stat.StdDev.
package interval

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scistats/scistats/pkg/errors"
)

// Interval is a two-sided confidence interval [Lower, Upper].
// Lower <= Upper always holds for intervals produced by this package.
type Interval struct {
	Lower float64
	Upper float64
}

// Contains reports whether x lies within the interval, inclusive on both
// ends.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lower && x <= iv.Upper
}

// Width returns the width of the interval. The width is zero only in the
// degenerate case of a zero sample standard deviation.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// MeanInterval computes a z-based confidence interval for the population
// mean from a sample.
//
// The margin is z * s / sqrt(n) where s is the Bessel-corrected sample
// standard deviation and z is the standard normal quantile at
// 1 - alpha/2 for alpha = 1 - confidence.
//
// The sample must contain at least two values (one degree of freedom is
// consumed by the mean) and confidence must lie strictly in (0, 1).
func MeanInterval(sample []float64, confidence float64) (Interval, error) {
	if err := validateMeanInterval("MeanInterval", sample, confidence); err != nil {
		return Interval{}, err
	}

	mean := stat.Mean(sample, nil)
	std := stat.StdDev(sample, nil)

	z, err := ZCritical(confidence)
	if err != nil {
		return Interval{}, err
	}

	margin := z * std / math.Sqrt(float64(len(sample)))
	return Interval{Lower: mean - margin, Upper: mean + margin}, nil
}

// MeanIntervalT computes a Student's t confidence interval for the
// population mean, using n-1 degrees of freedom. For small samples this is
// the better-calibrated construction; it converges to MeanInterval as n
// grows.
func MeanIntervalT(sample []float64, confidence float64) (Interval, error) {
	if err := validateMeanInterval("MeanIntervalT", sample, confidence); err != nil {
		return Interval{}, err
	}

	n := len(sample)
	mean := stat.Mean(sample, nil)
	std := stat.StdDev(sample, nil)

	tc, err := TCritical(confidence, float64(n-1))
	if err != nil {
		return Interval{}, err
	}

	margin := tc * std / math.Sqrt(float64(n))
	return Interval{Lower: mean - margin, Upper: mean + margin}, nil
}

// ZCritical returns the two-sided standard normal critical value for the
// given confidence level: the quantile at 1 - alpha/2.
func ZCritical(confidence float64) (float64, error) {
	if err := validateConfidence("ZCritical", confidence); err != nil {
		return 0, err
	}
	alpha := 1 - confidence
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	if err := errors.CheckScalar("z_critical", z, 0); err != nil {
		return 0, err
	}
	return z, nil
}

// TCritical returns the two-sided Student's t critical value for the given
// confidence level and degrees of freedom.
func TCritical(confidence, df float64) (float64, error) {
	if err := validateConfidence("TCritical", confidence); err != nil {
		return 0, err
	}
	if !(df > 0) {
		return 0, errors.NewValidationError("df", "must be positive", df)
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	alpha := 1 - confidence
	tc := dist.Quantile(1 - alpha/2)
	if err := errors.CheckScalar("t_critical", tc, 0); err != nil {
		return 0, err
	}
	return tc, nil
}

func validateMeanInterval(op string, sample []float64, confidence float64) error {
	if len(sample) < 2 {
		return errors.NewValidationError("sample", "needs at least 2 observations", len(sample))
	}
	if err := errors.CheckNumericalStability(op, sample, 0); err != nil {
		return err
	}
	return validateConfidence(op, confidence)
}

func validateConfidence(op string, confidence float64) error {
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return errors.NewValidationError("confidence", "must be in the open interval (0, 1)", confidence)
	}
	return nil
}
