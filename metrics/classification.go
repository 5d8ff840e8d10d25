package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/scistats/scistats/pkg/errors"
)

// Accuracy computes the fraction of exactly matching labels.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkVectorPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ClassificationError computes the fraction of mismatching labels,
// 1 - Accuracy.
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// Precision computes TP / (TP + FP) for binary labels. When no positive
// predictions exist the metric is undefined: an UndefinedMetricWarning is
// raised and 0 is returned.
func Precision(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkBinaryPair("Precision", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	tp, fp := 0, 0
	for i := 0; i < n; i++ {
		if yPred.AtVec(i) == 1 {
			if yTrue.AtVec(i) == 1 {
				tp++
			} else {
				fp++
			}
		}
	}

	if tp+fp == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positives", 0))
		return 0, nil
	}

	return float64(tp) / float64(tp+fp), nil
}

// Recall computes TP / (TP + FN) for binary labels. When no positive
// labels exist the metric is undefined: an UndefinedMetricWarning is raised
// and 0 is returned.
func Recall(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkBinaryPair("Recall", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	tp, fn := 0, 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			if yPred.AtVec(i) == 1 {
				tp++
			} else {
				fn++
			}
		}
	}

	if tp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true positives in labels", 0))
		return 0, nil
	}

	return float64(tp) / float64(tp+fn), nil
}

// F1Score computes the harmonic mean of precision and recall. Returns 0
// when both are 0.
func F1Score(yTrue, yPred *mat.VecDense) (float64, error) {
	p, err := Precision(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	r, err := Recall(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if p+r == 0 {
		return 0, nil
	}
	return 2 * p * r / (p + r), nil
}

// PRPoint is one point of a precision/recall curve, obtained by predicting
// positive whenever the score is at least Threshold.
type PRPoint struct {
	Threshold float64
	Precision float64
	Recall    float64
}

// PrecisionRecallCurve computes the precision/recall trade-off across all
// distinct score thresholds.
//
// Points are ordered by increasing threshold, so recall decreases along the
// slice. A final point with precision 1 and recall 0 is appended, matching
// the sklearn convention, with the last threshold repeated.
func PrecisionRecallCurve(yTrue, scores *mat.VecDense) ([]PRPoint, error) {
	n, err := checkVectorPair("PrecisionRecallCurve", yTrue, scores)
	if err != nil {
		return nil, err
	}
	if err := checkBinaryLabels("PrecisionRecallCurve", yTrue); err != nil {
		return nil, err
	}

	nPos := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			nPos++
		}
	}
	if nPos == 0 {
		return nil, errors.NewValueError("PrecisionRecallCurve", "no positive samples in labels")
	}

	// Sort indices by score, descending.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return scores.AtVec(idx[a]) > scores.AtVec(idx[b])
	})

	// Sweep thresholds from high to low, recording one point per distinct
	// score once all ties at that score are consumed.
	var points []PRPoint
	tp, fp := 0, 0
	for k := 0; k < n; k++ {
		i := idx[k]
		if yTrue.AtVec(i) == 1 {
			tp++
		} else {
			fp++
		}
		score := scores.AtVec(i)
		if k+1 < n && scores.AtVec(idx[k+1]) == score {
			continue
		}
		points = append(points, PRPoint{
			Threshold: score,
			Precision: float64(tp) / float64(tp+fp),
			Recall:    float64(tp) / float64(nPos),
		})
	}

	// Reverse into threshold-ascending order.
	for a, b := 0, len(points)-1; a < b; a, b = a+1, b-1 {
		points[a], points[b] = points[b], points[a]
	}

	points = append(points, PRPoint{
		Threshold: points[len(points)-1].Threshold,
		Precision: 1,
		Recall:    0,
	})

	return points, nil
}

// AUC computes the area under the ROC curve using the rank statistic, with
// ties contributing their average rank. When only one class is present the
// metric is undefined: an UndefinedMetricWarning is raised and 0.5 is
// returned.
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkBinaryPairScores("AUC", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	nPos, nNeg := 0, 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			nPos++
		} else {
			nNeg++
		}
	}

	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("auc", "only one class present in labels", 0.5))
		return 0.5, nil
	}

	// Rank scores ascending, averaging ranks over ties.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yPred.AtVec(idx[a]) < yPred.AtVec(idx[b])
	})

	ranks := make([]float64, n)
	for k := 0; k < n; {
		j := k
		for j+1 < n && yPred.AtVec(idx[j+1]) == yPred.AtVec(idx[k]) {
			j++
		}
		// Average 1-based rank across the tie group [k, j].
		avg := float64(k+j)/2 + 1
		for t := k; t <= j; t++ {
			ranks[idx[t]] = avg
		}
		k = j + 1
	}

	var sumRanksPos float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			sumRanksPos += ranks[i]
		}
	}

	u := sumRanksPos - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg)), nil
}

// AUCMatrix computes AUC for matrix input, using the first column of each
// matrix.
func AUCMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	yTrueVec, yPredVec, err := firstColumns("AUCMatrix", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return AUC(yTrueVec, yPredVec)
}

// BinaryLogLoss computes the mean binary cross-entropy. Predicted
// probabilities are clipped away from 0 and 1 to keep the logarithm finite.
func BinaryLogLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkBinaryPairScores("BinaryLogLoss", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	const eps = 1e-15

	var sum float64
	for i := 0; i < n; i++ {
		p := errors.ClipValue(yPred.AtVec(i), eps, 1-eps)
		if yTrue.AtVec(i) == 1 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}

	return sum / float64(n), nil
}

// checkBinaryPair validates a pair of binary label vectors.
func checkBinaryPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n, err := checkVectorPair(op, yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if err := checkBinaryLabels(op, yTrue); err != nil {
		return 0, err
	}
	if err := checkBinaryLabels(op, yPred); err != nil {
		return 0, err
	}
	return n, nil
}

// checkBinaryPairScores validates binary labels paired with real-valued
// scores.
func checkBinaryPairScores(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n, err := checkVectorPair(op, yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if err := checkBinaryLabels(op, yTrue); err != nil {
		return 0, err
	}
	return n, nil
}

func checkBinaryLabels(op string, y *mat.VecDense) error {
	for i := 0; i < y.Len(); i++ {
		v := y.AtVec(i)
		if v != 0 && v != 1 {
			return errors.NewValueError(op, "labels must be binary (0 or 1)")
		}
	}
	return nil
}

// firstColumns validates matrix input and extracts the first column of each
// matrix as a vector.
func firstColumns(op string, yTrue, yPred mat.Matrix) (*mat.VecDense, *mat.VecDense, error) {
	if yTrue == nil || yPred == nil {
		return nil, nil, errors.NewValueError(op, "nil matrix")
	}

	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 || rPred == 0 || cPred == 0 {
		return nil, nil, errors.NewValueError(op, "empty matrix")
	}
	if rTrue != rPred {
		return nil, nil, errors.NewDimensionError(op, rTrue, rPred, 0)
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return yTrueVec, yPredVec, nil
}
