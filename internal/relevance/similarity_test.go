package relevance

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		u, v []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"known angle", []float64{1, 0}, []float64{1, 1}, 1 / math.Sqrt2},
		{"scaled copies", []float64{2, 4}, []float64{1, 2}, 1},
		{"zero against nonzero", []float64{0, 0}, []float64{3, 4}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.u, tc.v)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("cosineSimilarity(%v, %v) = %v, want %v", tc.u, tc.v, got, tc.want)
			}
		})
	}
}

func TestCosineSimilarityBounded(t *testing.T) {
	vectors := [][]float64{
		{0.5, 0, 0.25},
		{0, 1, 0},
		{0.1, 0.1, 0.1},
		{0, 0, 0},
	}
	for _, u := range vectors {
		for _, v := range vectors {
			got := cosineSimilarity(u, v)
			if got < 0 || got > 1+1e-12 {
				t.Errorf("cosineSimilarity(%v, %v) = %v, out of [0,1]", u, v, got)
			}
		}
	}
}
