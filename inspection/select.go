package inspection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/scistats/scistats/core/model"
	"github.com/scistats/scistats/pkg/errors"
)

// SelectFromModel selects the features of a fitted model whose importance
// meets a threshold.
//
// A zero Threshold selects features with importance at or above the mean
// importance, matching the sklearn default.
type SelectFromModel struct {
	model.BaseEstimator

	importer model.FeatureImporter

	// Threshold is the minimum importance a feature needs to survive.
	Threshold float64

	support   []bool
	nFeatures int
}

// NewSelectFromModel creates a selector over an already fitted importer.
// Pass 0 for threshold to use the mean importance.
func NewSelectFromModel(importer model.FeatureImporter, threshold float64) *SelectFromModel {
	return &SelectFromModel{
		importer:  importer,
		Threshold: threshold,
	}
}

// Fit reads the importances from the underlying model and computes the
// support mask. X is only used to validate the feature count.
func (s *SelectFromModel) Fit(X mat.Matrix) error {
	if s.importer == nil {
		return errors.NewValueError("SelectFromModel.Fit", "nil feature importer")
	}

	importances, err := s.importer.FeatureImportances()
	if err != nil {
		return err
	}

	_, c := X.Dims()
	if c != len(importances) {
		return errors.NewDimensionError("SelectFromModel.Fit", len(importances), c, 1)
	}

	threshold := s.Threshold
	if threshold == 0 {
		for _, imp := range importances {
			threshold += imp
		}
		threshold /= float64(len(importances))
	}

	s.nFeatures = c
	s.support = make([]bool, c)
	selected := 0
	for j, imp := range importances {
		if imp >= threshold {
			s.support[j] = true
			selected++
		}
	}

	if selected == 0 {
		return errors.NewValueError("SelectFromModel.Fit", "threshold removed every feature")
	}

	s.SetFitted()
	return nil
}

// Transform returns X reduced to the selected feature columns.
func (s *SelectFromModel) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SelectFromModel", "Transform")
	}

	r, c := X.Dims()
	if c != s.nFeatures {
		return nil, errors.NewDimensionError("SelectFromModel.Transform", s.nFeatures, c, 1)
	}

	kept := 0
	for _, keep := range s.support {
		if keep {
			kept++
		}
	}

	result := mat.NewDense(r, kept, nil)
	for i := 0; i < r; i++ {
		out := 0
		for j := 0; j < c; j++ {
			if s.support[j] {
				result.Set(i, out, X.At(i, j))
				out++
			}
		}
	}

	return result, nil
}

// FitTransform fits on X and transforms it in one call.
func (s *SelectFromModel) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// GetSupport returns the boolean mask of selected features.
func (s *SelectFromModel) GetSupport() []bool {
	if !s.IsFitted() {
		return nil
	}
	support := make([]bool, len(s.support))
	copy(support, s.support)
	return support
}

// NSelected returns the number of surviving features.
func (s *SelectFromModel) NSelected() int {
	n := 0
	for _, keep := range s.support {
		if keep {
			n++
		}
	}
	return n
}
