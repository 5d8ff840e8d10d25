// Package power computes the sample size an experiment needs to detect a
// given effect with given error rates.
//
// The closed-form calculations use the normal approximation; SimulatePower
// cross-checks the analytic answer with a Monte Carlo run of the actual
// test procedure.
package power

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scistats/scistats/pkg/errors"
	"github.com/scistats/scistats/stats/sampling"
)

// ExperimentSize returns the per-group sample size needed for a one-sided
// two-proportion z-test to detect a shift from pNull to pAlt with the given
// significance level (alpha, type I error) and power (1 - type II error).
//
//	n = ((z_{1-alpha} * sdNull - z_{1-power} * sdAlt) / (pAlt - pNull))^2
//
// where sdNull = sqrt(2 * p0 * (1-p0)) is the pooled standard deviation
// under the null and sdAlt = sqrt(p0*(1-p0) + p1*(1-p1)) under the
// alternative. The result is rounded up.
func ExperimentSize(pNull, pAlt, alpha, power float64) (int, error) {
	if err := validateProportion("p_null", pNull); err != nil {
		return 0, err
	}
	if err := validateProportion("p_alt", pAlt); err != nil {
		return 0, err
	}
	if pAlt == pNull {
		return 0, errors.NewValidationError("p_alt", "must differ from p_null", pAlt)
	}
	if err := validateRate("alpha", alpha); err != nil {
		return 0, err
	}
	if err := validateRate("power", power); err != nil {
		return 0, err
	}

	zNull := distuv.UnitNormal.Quantile(1 - alpha)
	zAlt := distuv.UnitNormal.Quantile(1 - power)

	sdNull := math.Sqrt(2 * pNull * (1 - pNull))
	sdAlt := math.Sqrt(pNull*(1-pNull) + pAlt*(1-pAlt))

	diff := pAlt - pNull
	n := math.Pow((zNull*sdNull-zAlt*sdAlt)/diff, 2)

	if err := errors.CheckScalar("experiment_size", n, 0); err != nil {
		return 0, err
	}
	return int(math.Ceil(n)), nil
}

// MeanDetectionSize returns the sample size needed for a one-sided
// one-sample z-test to detect a mean shift of delta when the population
// standard deviation is sigma.
func MeanDetectionSize(delta, sigma, alpha, power float64) (int, error) {
	if math.IsNaN(delta) || delta == 0 || math.IsInf(delta, 0) {
		return 0, errors.NewValidationError("delta", "must be finite and non-zero", delta)
	}
	if math.IsNaN(sigma) || !(sigma > 0) {
		return 0, errors.NewValidationError("sigma", "must be positive", sigma)
	}
	if err := validateRate("alpha", alpha); err != nil {
		return 0, err
	}
	if err := validateRate("power", power); err != nil {
		return 0, err
	}

	zNull := distuv.UnitNormal.Quantile(1 - alpha)
	zPower := distuv.UnitNormal.Quantile(power)

	n := math.Pow((zNull+zPower)*sigma/math.Abs(delta), 2)
	return int(math.Ceil(n)), nil
}

// SimulatePower estimates, by simulation, the power of the one-sided
// two-proportion z-test with n observations per group when the control
// converts at pNull and the treatment at pAlt.
//
// Each trial draws both groups, runs the pooled z-test at the given alpha,
// and counts a rejection. The returned fraction estimates the true power;
// with the n from ExperimentSize it should land near the requested power,
// up to Monte Carlo noise.
func SimulatePower(pNull, pAlt float64, n int, alpha float64, numTrials int, seed uint64) (float64, error) {
	if err := validateProportion("p_null", pNull); err != nil {
		return 0, err
	}
	if err := validateProportion("p_alt", pAlt); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.NewValidationError("n", "must be at least 1", n)
	}
	if err := validateRate("alpha", alpha); err != nil {
		return 0, err
	}
	if numTrials < 1 {
		return 0, errors.NewValidationError("num_trials", "must be at least 1", numTrials)
	}

	src := rand.NewSource(seed)
	control, err := sampling.NewBernoulliSampler(pNull, src)
	if err != nil {
		return 0, err
	}
	treatment, err := sampling.NewBernoulliSampler(pAlt, src)
	if err != nil {
		return 0, err
	}

	zCrit := distuv.UnitNormal.Quantile(1 - alpha)

	rejections := 0
	for t := 0; t < numTrials; t++ {
		ctrl, err := control.Sample(n)
		if err != nil {
			return 0, err
		}
		treat, err := treatment.Sample(n)
		if err != nil {
			return 0, err
		}

		pc := stat.Mean(ctrl, nil)
		pt := stat.Mean(treat, nil)

		// Pooled proportion under the null.
		pooled := (pc + pt) / 2
		se := math.Sqrt(2 * pooled * (1 - pooled) / float64(n))
		if se == 0 {
			continue
		}

		z := (pt - pc) / se
		if z > zCrit {
			rejections++
		}
	}

	return float64(rejections) / float64(numTrials), nil
}

func validateProportion(name string, p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return errors.NewValidationError(name, "must be in the open interval (0, 1)", p)
	}
	return nil
}

func validateRate(name string, r float64) error {
	if math.IsNaN(r) || r <= 0 || r >= 1 {
		return errors.NewValidationError(name, "must be in the open interval (0, 1)", r)
	}
	return nil
}
