package preprocessing

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScalerFitTransform(t *testing.T) {
	tests := []struct {
		name      string
		X         *mat.Dense
		wantMean  []float64
		wantScale []float64
		wantErr   bool
	}{
		{
			name: "Two features",
			X: mat.NewDense(4, 2, []float64{
				1, 10,
				2, 20,
				3, 30,
				4, 40,
			}),
			wantMean:  []float64{2.5, 25},
			wantScale: []float64{math.Sqrt(1.25), math.Sqrt(125)},
		},
		{
			name: "Constant feature keeps scale one",
			X: mat.NewDense(3, 2, []float64{
				5, 1,
				5, 2,
				5, 3,
			}),
			wantMean:  []float64{5, 2},
			wantScale: []float64{1, math.Sqrt(2.0 / 3.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := NewStandardScalerDefault()
			err := scaler.Fit(tt.X)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			for j := range tt.wantMean {
				if math.Abs(scaler.Mean[j]-tt.wantMean[j]) > 1e-9 {
					t.Errorf("Mean[%d] = %v, want %v", j, scaler.Mean[j], tt.wantMean[j])
				}
				if math.Abs(scaler.Scale[j]-tt.wantScale[j]) > 1e-9 {
					t.Errorf("Scale[%d] = %v, want %v", j, scaler.Scale[j], tt.wantScale[j])
				}
			}

			transformed, err := scaler.Transform(tt.X)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			// Each non-constant column is centered with unit population
			// variance after scaling.
			r, c := transformed.Dims()
			for j := 0; j < c; j++ {
				var sum float64
				for i := 0; i < r; i++ {
					sum += transformed.At(i, j)
				}
				if math.Abs(sum/float64(r)) > 1e-9 {
					t.Errorf("column %d mean after transform = %v, want 0", j, sum/float64(r))
				}
			}
		})
	}
}

func TestStandardScalerRoundTrip(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		1.5, -3,
		2.5, 0,
		0.5, 7,
		4.0, 2,
		1.0, -1,
	})

	scaler := NewStandardScalerDefault()
	transformed, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	restored, err := scaler.InverseTransform(transformed)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-9 {
				t.Errorf("restored[%d,%d] = %v, want %v", i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestStandardScalerFlags(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{2, 4, 6})

	// Scaling disabled: only centering happens.
	centerOnly := NewStandardScaler(true, false)
	out, err := centerOnly.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	want := []float64{-2, 0, 2}
	for i, w := range want {
		if math.Abs(out.At(i, 0)-w) > 1e-9 {
			t.Errorf("center-only[%d] = %v, want %v", i, out.At(i, 0), w)
		}
	}

	// Centering disabled: values divide by the raw second moment spread.
	scaleOnly := NewStandardScaler(false, true)
	if _, err := scaleOnly.FitTransform(X); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	if scaleOnly.Mean[0] != 0 {
		t.Errorf("scale-only mean = %v, want 0", scaleOnly.Mean[0])
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	X := mat.NewDense(2, 1, []float64{1, 2})

	if _, err := scaler.Transform(X); err == nil {
		t.Error("Transform() before Fit expected error, got nil")
	}
	if _, err := scaler.InverseTransform(X); err == nil {
		t.Error("InverseTransform() before Fit expected error, got nil")
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScalerDefault()
	if err := scaler.Fit(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	XBad := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := scaler.Transform(XBad); err == nil {
		t.Error("Transform() with wrong feature count expected error, got nil")
	}
}

func TestStandardScalerString(t *testing.T) {
	scaler := NewStandardScalerDefault()
	if s := scaler.String(); strings.Contains(s, "n_features") {
		t.Errorf("unfitted String() = %q, should not report n_features", s)
	}

	if err := scaler.Fit(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if s := scaler.String(); !strings.Contains(s, "n_features=3") {
		t.Errorf("fitted String() = %q, want n_features=3", s)
	}
}

func BenchmarkStandardScalerFitTransform(b *testing.B) {
	const n, p = 1000, 20
	data := make([]float64, n*p)
	for i := range data {
		data[i] = float64(i % 113)
	}
	X := mat.NewDense(n, p, data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scaler := NewStandardScalerDefault()
		_, _ = scaler.FitTransform(X)
	}
}
