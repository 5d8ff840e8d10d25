package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/scistats/scistats/pkg/errors"
	"github.com/scistats/scistats/stats/interval"
)

// MeanIntervalOLS computes a confidence interval for the population mean by
// fitting an intercept-only regression and reading the interval off the
// intercept's standard error.
//
// The least squares solution of y = b*1 is the sample mean, and the
// standard error of b is s/sqrt(n) with s the Bessel-corrected residual
// standard deviation, so the result agrees with interval.MeanInterval up to
// floating point noise. Kept as an independent route for cross-checking the
// closed-form construction against the regression machinery.
func MeanIntervalOLS(sample []float64, confidence float64) (interval.Interval, error) {
	n := len(sample)
	if n < 2 {
		return interval.Interval{}, errors.NewValidationError("sample", "needs at least 2 observations", n)
	}
	if err := errors.CheckNumericalStability("MeanIntervalOLS", sample, 0); err != nil {
		return interval.Interval{}, err
	}

	// Design matrix is a single column of ones; the normal equations
	// reduce to a 1x1 system but are solved with the same mat machinery
	// as the general case.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	X := mat.NewDense(n, 1, ones)
	y := mat.NewVecDense(n, sample)

	var XT mat.Dense
	XT.CloneFrom(X.T())

	var XTX mat.Dense
	XTX.Mul(&XT, X)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return interval.Interval{}, errors.NewModelError("MeanIntervalOLS", "singular matrix", errors.ErrSingularMatrix)
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, y)

	var beta mat.VecDense
	beta.MulVec(&XTXInv, &XTy)
	betaHat := beta.AtVec(0)

	// Residual variance with one parameter fitted: RSS / (n - 1).
	var rss float64
	for i := 0; i < n; i++ {
		resid := sample[i] - betaHat
		rss += resid * resid
	}
	sigma2 := rss / float64(n-1)

	// Var(beta) = sigma^2 * (X^T X)^(-1).
	se := math.Sqrt(sigma2 * XTXInv.At(0, 0))

	z, err := interval.ZCritical(confidence)
	if err != nil {
		return interval.Interval{}, err
	}

	margin := z * se
	return interval.Interval{Lower: betaHat - margin, Upper: betaHat + margin}, nil
}
