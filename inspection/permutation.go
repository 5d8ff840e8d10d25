// Package inspection provides model-agnostic tools for ranking and
// selecting input features of a fitted model.
package inspection

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/scistats/scistats/core/model"
	"github.com/scistats/scistats/core/parallel"
	"github.com/scistats/scistats/pkg/errors"
)

// PermutationResult holds per-feature permutation importances.
type PermutationResult struct {
	// BaselineScore is the model score on the unpermuted data.
	BaselineScore float64

	// Mean is the average score drop per feature across repeats. Larger
	// values mean the model relies more on that feature; values near zero
	// (or negative, from noise) mean it is dispensable.
	Mean []float64

	// Std is the standard deviation of the score drop across repeats.
	Std []float64
}

// PermutationImportance scores a fitted model on X, y with each feature
// column shuffled in turn, nRepeats times per feature, and reports the
// score drop relative to the unpermuted baseline.
//
// The model is only read, never refitted. Shuffles are driven by sources
// derived from seed, so results are reproducible and features can be
// processed in parallel.
func PermutationImportance(reg model.Regressor, X, y mat.Matrix, nRepeats int, seed uint64) (*PermutationResult, error) {
	if reg == nil {
		return nil, errors.NewValueError("PermutationImportance", "nil model")
	}
	if X == nil || y == nil {
		return nil, errors.NewValueError("PermutationImportance", "nil data")
	}
	if nRepeats < 1 {
		return nil, errors.NewValidationError("n_repeats", "must be at least 1", nRepeats)
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("PermutationImportance", "empty data", errors.ErrEmptyData)
	}

	baseline, err := reg.Score(X, y)
	if err != nil {
		return nil, err
	}

	result := &PermutationResult{
		BaselineScore: baseline,
		Mean:          make([]float64, c),
		Std:           make([]float64, c),
	}

	var (
		mu     sync.Mutex
		runErr error
	)

	// One feature per unit of work; each feature derives its own source.
	parallel.ParallelizeWithThreshold(c, 4, func(start, end int) {
		for j := start; j < end; j++ {
			mean, std, err := permuteFeature(reg, X, y, j, nRepeats, featureSeed(seed, j), baseline)
			if err != nil {
				mu.Lock()
				if runErr == nil {
					runErr = errors.Wrapf(err, "feature %d failed", j)
				}
				mu.Unlock()
				return
			}
			result.Mean[j] = mean
			result.Std[j] = std
		}
	})

	if runErr != nil {
		return nil, runErr
	}
	return result, nil
}

// permuteFeature shuffles column j of X nRepeats times and returns the mean
// and standard deviation of the score drop.
func permuteFeature(reg model.Regressor, X, y mat.Matrix, j, nRepeats int, seed uint64, baseline float64) (float64, float64, error) {
	r, _ := X.Dims()

	// Private copy of X; only column j mutates between repeats.
	Xperm := mat.DenseCopyOf(X)
	column := make([]float64, r)
	for i := 0; i < r; i++ {
		column[i] = X.At(i, j)
	}

	rng := rand.New(rand.NewSource(seed))

	drops := make([]float64, nRepeats)
	for rep := 0; rep < nRepeats; rep++ {
		rng.Shuffle(r, func(a, b int) {
			column[a], column[b] = column[b], column[a]
		})
		for i := 0; i < r; i++ {
			Xperm.Set(i, j, column[i])
		}

		score, err := reg.Score(Xperm, y)
		if err != nil {
			return 0, 0, err
		}
		drops[rep] = baseline - score
	}

	var mean float64
	for _, d := range drops {
		mean += d
	}
	mean /= float64(nRepeats)

	var variance float64
	for _, d := range drops {
		diff := d - mean
		variance += diff * diff
	}
	variance /= float64(nRepeats)

	return mean, math.Sqrt(variance), nil
}

// featureSeed derives a per-feature seed with SplitMix64-style mixing.
func featureSeed(seed uint64, feature int) uint64 {
	z := seed + uint64(feature)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
