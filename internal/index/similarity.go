package index

// Cosine returns the cosine similarity between two non-negative weight
// vectors, in [0, 1]. Returns exactly 0 when either vector is empty, has zero
// norm, or the vectors share no non-zero dimension; it never divides by zero.
func Cosine(a, b SparseVector) float64 {
	return CosineWithNorms(a, b, a.Norm(), b.Norm())
}

// CosineWithNorms is Cosine with precomputed L2 norms. Document norms are
// cached alongside weighted vectors, so only the dot product is paid per
// candidate.
func CosineWithNorms(a, b SparseVector, normA, normB float64) float64 {
	if len(a) == 0 || len(b) == 0 || normA == 0 || normB == 0 {
		return 0
	}
	dot := a.Dot(b)
	if dot == 0 {
		return 0
	}
	return dot / (normA * normB)
}
