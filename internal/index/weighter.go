package index

import "math"

// IDF returns the smoothed inverse document frequency for a term:
//
//	log((N+1)/(df+1)) + 1
//
// The smoothing keeps the weight strictly positive and avoids division by
// zero when df == N or df == 0.
func IDF(docFreq, totalDocs int) float64 {
	return math.Log(float64(totalDocs+1)/float64(docFreq+1)) + 1
}

// Weight converts a raw term-frequency vector into a TF-IDF vector using the
// current document frequencies. Weights are count x idf without L2
// normalization; normalization happens at similarity time through the cached
// norm, so an IDF change only requires re-weighting, never re-counting.
func Weight(tf SparseVector, docFreq func(termIndex int) int, totalDocs int) SparseVector {
	weighted := make(SparseVector, len(tf))
	for idx, count := range tf {
		weighted[idx] = count * IDF(docFreq(idx), totalDocs)
	}
	return weighted
}
