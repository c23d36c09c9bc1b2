package index

// InvertedIndex maps each vocabulary dimension to the set of document IDs
// containing the term at least once. It provides document frequencies for IDF
// and restricts similarity computation to documents sharing at least one
// query term; documents with no shared dimension always score exactly 0, so
// skipping them is safe.
type InvertedIndex struct {
	postings map[int]map[string]struct{}
}

// NewInvertedIndex creates an empty inverted index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[int]map[string]struct{}),
	}
}

// Add records docID in the posting set of every given term index.
func (ii *InvertedIndex) Add(docID string, termIndices []int) {
	for _, idx := range termIndices {
		set, ok := ii.postings[idx]
		if !ok {
			set = make(map[string]struct{})
			ii.postings[idx] = set
		}
		set[docID] = struct{}{}
	}
}

// Remove deletes docID from the posting set of every given term index.
// Posting sets that become empty are deleted to keep memory bounded; the
// vocabulary index itself is never reclaimed.
func (ii *InvertedIndex) Remove(docID string, termIndices []int) {
	for _, idx := range termIndices {
		set, ok := ii.postings[idx]
		if !ok {
			continue
		}
		delete(set, docID)
		if len(set) == 0 {
			delete(ii.postings, idx)
		}
	}
}

// Candidates returns the union of posting sets for the given term indices:
// every document sharing at least one term with the query.
func (ii *InvertedIndex) Candidates(termIndices []int) map[string]struct{} {
	candidates := make(map[string]struct{})
	for _, idx := range termIndices {
		for docID := range ii.postings[idx] {
			candidates[docID] = struct{}{}
		}
	}
	return candidates
}

// DocFreq returns the number of documents containing the term, 0 if the term
// has no postings.
func (ii *InvertedIndex) DocFreq(termIndex int) int {
	return len(ii.postings[termIndex])
}

// TermCount returns the number of terms with at least one posting.
func (ii *InvertedIndex) TermCount() int {
	return len(ii.postings)
}
