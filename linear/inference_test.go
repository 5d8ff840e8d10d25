package linear

import (
	"math"
	"testing"

	"github.com/scistats/scistats/stats/interval"
)

func TestMeanIntervalOLS(t *testing.T) {
	tests := []struct {
		name       string
		sample     []float64
		confidence float64
		wantErr    bool
	}{
		{
			name:       "Five measurements",
			sample:     []float64{998, 1002, 997, 1005, 999},
			confidence: 0.95,
		},
		{
			name:       "Two observations",
			sample:     []float64{-1, 1},
			confidence: 0.9,
		},
		{
			name:       "Wider sample at 99%",
			sample:     []float64{10, 12, 9, 14, 11, 13, 10, 12},
			confidence: 0.99,
		},
		{
			name:       "Single observation",
			sample:     []float64{1000},
			confidence: 0.95,
			wantErr:    true,
		},
		{
			name:       "Bad confidence",
			sample:     []float64{1, 2, 3},
			confidence: 0,
			wantErr:    true,
		},
		{
			name:       "NaN in sample",
			sample:     []float64{1, math.NaN(), 3},
			confidence: 0.95,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MeanIntervalOLS(tt.sample, tt.confidence)
			if (err != nil) != tt.wantErr {
				t.Errorf("MeanIntervalOLS() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			// The intercept-only regression route and the closed-form route
			// must agree on the same sample.
			want, err := interval.MeanInterval(tt.sample, tt.confidence)
			if err != nil {
				t.Fatalf("MeanInterval() error = %v", err)
			}
			if math.Abs(got.Lower-want.Lower) > 1e-9 {
				t.Errorf("lower = %v, closed form gives %v", got.Lower, want.Lower)
			}
			if math.Abs(got.Upper-want.Upper) > 1e-9 {
				t.Errorf("upper = %v, closed form gives %v", got.Upper, want.Upper)
			}
		})
	}
}

func BenchmarkMeanIntervalOLS(b *testing.B) {
	sample := make([]float64, 500)
	for i := range sample {
		sample[i] = float64(i % 37)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MeanIntervalOLS(sample, 0.95)
	}
}
