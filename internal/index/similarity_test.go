package index

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b SparseVector
		want float64
	}{
		{
			name: "identical vectors",
			a:    SparseVector{0: 1, 1: 2, 2: 3},
			b:    SparseVector{0: 1, 1: 2, 2: 3},
			want: 1.0,
		},
		{
			name: "orthogonal vectors",
			a:    SparseVector{0: 1},
			b:    SparseVector{1: 1},
			want: 0.0,
		},
		{
			name: "empty vector",
			a:    SparseVector{},
			b:    SparseVector{0: 1},
			want: 0.0,
		},
		{
			name: "both empty",
			a:    SparseVector{},
			b:    SparseVector{},
			want: 0.0,
		},
		{
			name: "partial overlap",
			a:    SparseVector{0: 1, 1: 1},
			b:    SparseVector{1: 1, 2: 1},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSymmetric(t *testing.T) {
	a := SparseVector{0: 0.3, 2: 1.7, 5: 0.2}
	b := SparseVector{0: 1.1, 2: 0.4, 7: 2.0}

	if ab, ba := Cosine(a, b), Cosine(b, a); math.Abs(ab-ba) > 1e-12 {
		t.Errorf("Cosine(a,b) = %v, Cosine(b,a) = %v", ab, ba)
	}
}

func TestCosineRange(t *testing.T) {
	a := SparseVector{0: 2, 1: 1}
	b := SparseVector{0: 1, 1: 3}

	got := Cosine(a, b)
	if got < 0 || got > 1 {
		t.Errorf("Cosine() = %v, want within [0,1]", got)
	}
}

func TestCosineWithNormsZeroNorm(t *testing.T) {
	a := SparseVector{0: 1}
	if got := CosineWithNorms(a, a, 0, 1); got != 0 {
		t.Errorf("zero normA gives %v, want 0", got)
	}
	if got := CosineWithNorms(a, a, 1, 0); got != 0 {
		t.Errorf("zero normB gives %v, want 0", got)
	}
}
