package index

import "testing"

func rankFixture() (SparseVector, float64, map[string]struct{}, candidateVector) {
	query := SparseVector{0: 1}
	docs := map[string]SparseVector{
		"d1": {0: 1},         // exact match, score 1.0
		"d2": {0: 1, 1: 1},   // partial match
		"d3": {0: 1, 1: 100}, // barely matches
	}
	candidates := map[string]struct{}{"d1": {}, "d2": {}, "d3": {}}
	lookup := func(docID string) (SparseVector, float64, bool) {
		vec, ok := docs[docID]
		if !ok {
			return nil, 0, false
		}
		return vec, vec.Norm(), true
	}
	return query, query.Norm(), candidates, lookup
}

func TestRankOrdering(t *testing.T) {
	query, norm, candidates, lookup := rankFixture()

	results := Rank(query, norm, candidates, lookup, 0, 10)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantOrder := []string{"d1", "d2", "d3"}
	for i, want := range wantOrder {
		if results[i].DocID != want {
			t.Errorf("rank %d = %q, want %q", i, results[i].DocID, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("scores not descending at rank %d", i)
		}
	}
}

func TestRankThreshold(t *testing.T) {
	query, norm, candidates, lookup := rankFixture()

	// d3's score is ~0.01; a 0.5 threshold keeps only d1 and d2.
	results := Rank(query, norm, candidates, lookup, 0.5, 10)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// The threshold is an inclusive lower bound: d1 scores exactly 1.0.
	results = Rank(query, norm, candidates, lookup, 1.0, 10)
	if len(results) != 1 || results[0].DocID != "d1" {
		t.Fatalf("threshold 1.0 results = %v, want just d1", results)
	}
}

func TestRankTruncation(t *testing.T) {
	query, norm, candidates, lookup := rankFixture()

	results := Rank(query, norm, candidates, lookup, 0, 2)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].DocID != "d1" {
		t.Errorf("top result = %q, want d1", results[0].DocID)
	}
}

func TestRankTieBreaksByDocID(t *testing.T) {
	query := SparseVector{0: 1}
	docs := map[string]SparseVector{
		"zebra": {0: 2},
		"alpha": {0: 5},
		"mango": {0: 1},
	}
	candidates := map[string]struct{}{"zebra": {}, "alpha": {}, "mango": {}}
	lookup := func(docID string) (SparseVector, float64, bool) {
		vec := docs[docID]
		return vec, vec.Norm(), true
	}

	// All three are scalar multiples of the query, so all score 1.0; order
	// must fall back to ascending document ID.
	results := Rank(query, query.Norm(), candidates, lookup, 0, 10)
	wantOrder := []string{"alpha", "mango", "zebra"}
	for i, want := range wantOrder {
		if results[i].DocID != want {
			t.Errorf("rank %d = %q, want %q", i, results[i].DocID, want)
		}
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	query, norm, _, lookup := rankFixture()

	results := Rank(query, norm, nil, lookup, 0, 10)
	if len(results) != 0 {
		t.Errorf("got %d results for no candidates, want 0", len(results))
	}
}
