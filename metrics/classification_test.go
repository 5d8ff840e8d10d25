package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Four of five correct",
			yTrue: []float64{1, 0, 1, 1, 0},
			yPred: []float64{1, 0, 0, 1, 0},
			want:  0.8,
		},
		{
			name:  "All correct",
			yTrue: []float64{0, 1, 0},
			yPred: []float64{0, 1, 0},
			want:  1,
		},
		{
			name:  "All wrong",
			yTrue: []float64{0, 1},
			yPred: []float64{1, 0},
			want:  0,
		},
		{
			name:  "Multiclass labels compare by equality",
			yTrue: []float64{0, 1, 2, 2},
			yPred: []float64{0, 1, 2, 1},
			want:  0.75,
		},
		{
			name:    "Length mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
		{
			name:    "Empty input",
			yTrue:   nil,
			yPred:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(vec(tt.yTrue), vec(tt.yPred))
			if (err != nil) != tt.wantErr {
				t.Errorf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassificationError(t *testing.T) {
	yTrue := vec([]float64{1, 0, 1, 1, 0})
	yPred := vec([]float64{1, 0, 0, 1, 0})

	got, err := ClassificationError(yTrue, yPred)
	if err != nil {
		t.Fatalf("ClassificationError() error = %v", err)
	}
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("ClassificationError() = %v, want 0.2", got)
	}

	// Accuracy and error always sum to one on the same inputs.
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		t.Fatalf("Accuracy() error = %v", err)
	}
	if math.Abs(got+acc-1) > 1e-12 {
		t.Errorf("error %v + accuracy %v != 1", got, acc)
	}

	if _, err := ClassificationError(vec(nil), vec(nil)); err == nil {
		t.Error("ClassificationError() with empty input expected error, got nil")
	}
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name     string
		yTrue    []float64
		yPred    []float64
		want     float64
		wantWarn bool
		wantErr  bool
	}{
		{
			name:  "Cleanly separated scores",
			yTrue: []float64{0, 0, 1, 1, 1},
			yPred: []float64{0.05, 0.3, 0.6, 0.7, 0.95},
			want:  1,
		},
		{
			name:  "Inverted ranking",
			yTrue: []float64{1, 1, 0, 0},
			yPred: []float64{0.1, 0.2, 0.8, 0.9},
			want:  0,
		},
		{
			name:  "One low-scored positive",
			yTrue: []float64{1, 0, 1, 0, 1},
			yPred: []float64{0.9, 0.3, 0.6, 0.5, 0.2},
			// 4 of 6 positive/negative pairs ranked correctly.
			want: 2.0 / 3.0,
		},
		{
			name:  "Tie contributes half a pair",
			yTrue: []float64{1, 0, 1, 0},
			yPred: []float64{0.8, 0.5, 0.5, 0.2},
			want:  0.875,
		},
		{
			name:  "Identical scores everywhere",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{0.7, 0.7, 0.7, 0.7},
			want:  0.5,
		},
		{
			name:     "Only positives is undefined",
			yTrue:    []float64{1, 1, 1},
			yPred:    []float64{0.2, 0.5, 0.8},
			want:     0.5,
			wantWarn: true,
		},
		{
			name:     "Only negatives is undefined",
			yTrue:    []float64{0, 0, 0},
			yPred:    []float64{0.2, 0.5, 0.8},
			want:     0.5,
			wantWarn: true,
		},
		{
			name:    "Non-binary labels",
			yTrue:   []float64{0, 1, 2},
			yPred:   []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
		{
			name:    "Length mismatch",
			yTrue:   []float64{0, 1, 1},
			yPred:   []float64{0.4, 0.6},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warned := captureWarnings(t)

			got, err := AUC(vec(tt.yTrue), vec(tt.yPred))
			if (err != nil) != tt.wantErr {
				t.Errorf("AUC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
			if *warned != tt.wantWarn {
				t.Errorf("warning raised = %v, want %v", *warned, tt.wantWarn)
			}
		})
	}
}

func TestAUCMatrix(t *testing.T) {
	captureWarnings(t)

	yTrue := mat.NewDense(5, 1, []float64{1, 0, 1, 0, 1})
	yPred := mat.NewDense(5, 1, []float64{0.9, 0.3, 0.6, 0.5, 0.2})

	got, err := AUCMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("AUCMatrix() error = %v", err)
	}
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("AUCMatrix() = %v, want 2/3", got)
	}

	// Extra columns are ignored; only the first column feeds the metric.
	yTrueWide := mat.NewDense(5, 2, []float64{
		1, 99,
		0, 99,
		1, 99,
		0, 99,
		1, 99,
	})
	yPredWide := mat.NewDense(5, 2, []float64{
		0.9, -1,
		0.3, -1,
		0.6, -1,
		0.5, -1,
		0.2, -1,
	})
	wide, err := AUCMatrix(yTrueWide, yPredWide)
	if err != nil {
		t.Fatalf("AUCMatrix() with extra columns error = %v", err)
	}
	if wide != got {
		t.Errorf("AUCMatrix() with extra columns = %v, want %v", wide, got)
	}

	if _, err := AUCMatrix(nil, yPred); err == nil {
		t.Error("AUCMatrix(nil) expected error, got nil")
	}
	short := mat.NewDense(3, 1, []float64{1, 0, 1})
	if _, err := AUCMatrix(yTrue, short); err == nil {
		t.Error("AUCMatrix() with row mismatch expected error, got nil")
	}
}

func TestBinaryLogLoss(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Confident and correct",
			yTrue: []float64{1, 0},
			yPred: []float64{0.8, 0.2},
			want:  -math.Log(0.8),
		},
		{
			name:  "Maximally uncertain",
			yTrue: []float64{1, 0, 1, 0},
			yPred: []float64{0.5, 0.5, 0.5, 0.5},
			want:  math.Log(2),
		},
		{
			name:  "Confident and wrong",
			yTrue: []float64{1},
			yPred: []float64{0.01},
			want:  -math.Log(0.01),
		},
		{
			name:    "Non-binary labels",
			yTrue:   []float64{0.5},
			yPred:   []float64{0.5},
			wantErr: true,
		},
		{
			name:    "Empty input",
			yTrue:   nil,
			yPred:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BinaryLogLoss(vec(tt.yTrue), vec(tt.yPred))
			if (err != nil) != tt.wantErr {
				t.Errorf("BinaryLogLoss() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BinaryLogLoss() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryLogLossClipsExtremeProbabilities(t *testing.T) {
	// Probabilities of exactly 0 and 1 would make the loss infinite; the
	// clip keeps it finite on both the correct and the wrong side.
	correct, err := BinaryLogLoss(vec([]float64{1, 0}), vec([]float64{1, 0}))
	if err != nil {
		t.Fatalf("BinaryLogLoss() error = %v", err)
	}
	if math.IsInf(correct, 0) || math.IsNaN(correct) {
		t.Fatalf("loss on exact correct probabilities = %v, want finite", correct)
	}
	if correct > 1e-12 {
		t.Errorf("loss on exact correct probabilities = %v, want near 0", correct)
	}

	wrong, err := BinaryLogLoss(vec([]float64{1}), vec([]float64{0}))
	if err != nil {
		t.Fatalf("BinaryLogLoss() error = %v", err)
	}
	if math.IsInf(wrong, 0) {
		t.Fatal("loss on exact wrong probability is infinite")
	}
	if math.Abs(wrong+math.Log(1e-15)) > 1e-6 {
		t.Errorf("loss on exact wrong probability = %v, want -log(1e-15)", wrong)
	}
}

func BenchmarkAUC(b *testing.B) {
	const n = 10000
	yTrue := make([]float64, n)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = float64(i % 2)
		scores[i] = float64((i*131)%997) / 997
	}
	yTrueVec := mat.NewVecDense(n, yTrue)
	scoresVec := mat.NewVecDense(n, scores)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = AUC(yTrueVec, scoresVec)
	}
}

func BenchmarkBinaryLogLoss(b *testing.B) {
	const n = 10000
	yTrue := make([]float64, n)
	yPred := make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = float64(i % 2)
		yPred[i] = 0.01 + 0.98*float64(i%100)/99
	}
	yTrueVec := mat.NewVecDense(n, yTrue)
	yPredVec := mat.NewVecDense(n, yPred)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BinaryLogLoss(yTrueVec, yPredVec)
	}
}
