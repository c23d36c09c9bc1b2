package index

import "sort"

// ScoredDoc is a ranked search hit.
type ScoredDoc struct {
	DocID string  `json:"doc_id"`
	Score float64 `json:"score"`
}

// candidateVector resolves a candidate document ID to its weighted vector and
// cached norm.
type candidateVector func(docID string) (vec SparseVector, norm float64, ok bool)

// Rank scores every candidate against the query vector, discards scores below
// threshold (inclusive lower bound), sorts by score descending with ties
// broken by document ID ascending, and truncates to maxResults. It has no
// side effects.
func Rank(query SparseVector, queryNorm float64, candidates map[string]struct{}, lookup candidateVector, threshold float64, maxResults int) []ScoredDoc {
	results := make([]ScoredDoc, 0, len(candidates))
	for docID := range candidates {
		vec, norm, ok := lookup(docID)
		if !ok {
			continue
		}
		score := CosineWithNorms(query, vec, queryNorm, norm)
		if score < threshold {
			continue
		}
		results = append(results, ScoredDoc{DocID: docID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
