package index

import (
	"math"
	"testing"
)

func TestIDF(t *testing.T) {
	tests := []struct {
		name      string
		docFreq   int
		totalDocs int
		want      float64
	}{
		{"term in every doc", 4, 4, 1.0},
		{"term in no doc", 0, 4, math.Log(5) + 1},
		{"term in one of two", 1, 2, math.Log(1.5) + 1},
		{"empty corpus", 0, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IDF(tt.docFreq, tt.totalDocs)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IDF(%d, %d) = %v, want %v", tt.docFreq, tt.totalDocs, got, tt.want)
			}
		})
	}
}

func TestIDFStrictlyPositive(t *testing.T) {
	for df := 0; df <= 10; df++ {
		if got := IDF(df, 10); got <= 0 {
			t.Errorf("IDF(%d, 10) = %v, want > 0", df, got)
		}
	}
}

func TestIDFOrdersRareAboveCommon(t *testing.T) {
	rare := IDF(1, 100)
	common := IDF(90, 100)
	if rare <= common {
		t.Errorf("IDF(rare)=%v not greater than IDF(common)=%v", rare, common)
	}
}

func TestWeight(t *testing.T) {
	tf := SparseVector{0: 2, 1: 1}
	docFreq := func(idx int) int {
		if idx == 0 {
			return 1
		}
		return 3
	}

	weighted := Weight(tf, docFreq, 3)

	want0 := 2 * IDF(1, 3)
	want1 := 1 * IDF(3, 3)
	if math.Abs(weighted[0]-want0) > 1e-9 {
		t.Errorf("weight[0] = %v, want %v", weighted[0], want0)
	}
	if math.Abs(weighted[1]-want1) > 1e-9 {
		t.Errorf("weight[1] = %v, want %v", weighted[1], want1)
	}
}

func TestWeightEmpty(t *testing.T) {
	weighted := Weight(SparseVector{}, func(int) int { return 0 }, 0)
	if len(weighted) != 0 {
		t.Errorf("weighting an empty vector yields %d dimensions, want 0", len(weighted))
	}
}
