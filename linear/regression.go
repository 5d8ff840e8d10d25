// Package linear implements ordinary least squares regression on gonum
// matrices.
package linear

import (
	"encoding/json"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/scistats/scistats/core/model"
	"github.com/scistats/scistats/core/parallel"
	"github.com/scistats/scistats/pkg/errors"
)

// Rows below this threshold are processed sequentially when building the
// design matrix.
const parallelThreshold = 1000

// LinearRegression is an ordinary least squares model fitted via the
// normal equations w = (X^T X)^(-1) X^T y.
type LinearRegression struct {
	model.BaseEstimator
	Weights   *mat.VecDense // coefficients, one per feature
	Intercept float64
	NFeatures int
}

// NewLinearRegression creates an untrained linear regression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit trains the model on X (n x p) and y (n x 1).
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	// Augment X with a leading column of ones for the intercept.
	XWithIntercept := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var XT mat.Dense
	XT.CloneFrom(XWithIntercept.T())

	var XTX mat.Dense
	XTX.Mul(&XT, XWithIntercept)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	weights := mat.NewVecDense(c+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	lr.Intercept = weights.AtVec(0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, weights.AtVec(i+1))
	}

	lr.SetFitted()

	return nil
}

// Predict returns predictions for X as an n x 1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// Score returns the coefficient of determination R^2 on X, y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()

	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)

		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// GetWeights returns the fitted coefficients.
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept returns the fitted intercept.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// FeatureImportances returns the absolute coefficient per feature. For
// meaningful importance rankings the features should be on comparable
// scales; see preprocessing.StandardScaler.
func (lr *LinearRegression) FeatureImportances() ([]float64, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "FeatureImportances")
	}

	importances := make([]float64, lr.Weights.Len())
	for i := range importances {
		w := lr.Weights.AtVec(i)
		if w < 0 {
			w = -w
		}
		importances[i] = w
	}
	return importances, nil
}

// modelParams is the serialized form of a fitted model.
type modelParams struct {
	Name      string    `json:"name"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	NFeatures int       `json:"n_features"`
}

// Save writes the fitted model to path as JSON.
func (lr *LinearRegression) Save(path string) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError("LinearRegression", "Save")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create model file")
	}
	defer file.Close()

	params := modelParams{
		Name:      "LinearRegression",
		Weights:   lr.GetWeights(),
		Intercept: lr.Intercept,
		NFeatures: lr.NFeatures,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&params); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// Load reads a fitted model from path.
func (lr *LinearRegression) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open model file")
	}
	defer file.Close()

	var params modelParams
	if err := json.NewDecoder(file).Decode(&params); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	if params.Name != "LinearRegression" {
		return errors.Newf("unexpected model name %q", params.Name)
	}
	if params.NFeatures != len(params.Weights) {
		return errors.NewDimensionError("LinearRegression.Load", params.NFeatures, len(params.Weights), 1)
	}

	lr.NFeatures = params.NFeatures
	lr.Intercept = params.Intercept
	lr.Weights = mat.NewVecDense(len(params.Weights), params.Weights)
	lr.SetFitted()

	return nil
}
