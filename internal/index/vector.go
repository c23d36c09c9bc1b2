package index

import "math"

// SparseVector is a term vector keyed by vocabulary dimension index. Zero
// entries are omitted; per-document vocabulary overlap is small relative to
// the global vocabulary, which keeps dot products sub-linear in vocabulary
// size.
type SparseVector map[int]float64

// Dimensions returns the non-zero dimension indices of the vector.
func (sv SparseVector) Dimensions() []int {
	dims := make([]int, 0, len(sv))
	for idx := range sv {
		dims = append(dims, idx)
	}
	return dims
}

// Dot computes the dot product over the intersection of non-zero dimensions.
// Iterates the smaller operand.
func (sv SparseVector) Dot(other SparseVector) float64 {
	a, b := sv, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, weight := range a {
		if w, ok := b[idx]; ok {
			dot += weight * w
		}
	}
	return dot
}

// Norm returns the L2 norm of the vector.
func (sv SparseVector) Norm() float64 {
	var sum float64
	for _, weight := range sv {
		sum += weight * weight
	}
	return math.Sqrt(sum)
}

// BuildDocumentVector converts a document's token sequence into a raw
// term-frequency vector, resolving unseen terms into the vocabulary as a side
// effect. An empty token sequence yields an empty vector.
func BuildDocumentVector(vocab *Vocabulary, tokens []string) SparseVector {
	tf := make(SparseVector, len(tokens))
	for _, token := range tokens {
		tf[vocab.Resolve(token)]++
	}
	return tf
}

// BuildQueryVector converts a query's token sequence into a raw
// term-frequency vector. Unknown terms are dropped rather than resolved; they
// cannot match any document and would contribute zero to every similarity.
func BuildQueryVector(vocab *Vocabulary, tokens []string) SparseVector {
	tf := make(SparseVector, len(tokens))
	for _, token := range tokens {
		if idx, ok := vocab.Lookup(token); ok {
			tf[idx]++
		}
	}
	return tf
}
