package index

import (
	"fmt"
	"sync"
)

// document is the per-document record held by the Manager. The raw TF vector
// is retained so that a global IDF change only requires re-weighting, not
// re-tokenizing; the weighted vector and norm are caches consistent with the
// IDF state as of the last reweight.
type document struct {
	tokenCount int
	tf         SparseVector
	weights    SparseVector
	norm       float64
}

// Stats reports read-only index statistics.
type Stats struct {
	DocumentCount            int     `json:"document_count"`
	VocabularySize           int     `json:"vocabulary_size"`
	AvgDimensionsPerDocument float64 `json:"avg_dimensions_per_document"`
}

// Manager owns a single index instance: the vocabulary, the inverted index,
// and the per-document weighted vectors. A read-write lock allows concurrent
// searches while add/remove take exclusive ownership, so every search
// observes the vocabulary, postings, and IDF weights as one consistent
// snapshot.
//
// Re-weighting is lazy: mutations mark the index dirty and the first search
// after a mutation recomputes every stored document's TF-IDF vector and norm
// under the write lock before scoring. Search re-checks the dirty flag under
// its read lock and retries the reweight, so no query is ever served against
// stale weights and bulk loads stay O(corpus) total rather than O(corpus^2).
type Manager struct {
	mu       sync.RWMutex
	vocab    *Vocabulary
	inverted *InvertedIndex
	docs     map[string]*document
	dirty    bool
}

// NewManager creates an empty index.
func NewManager() *Manager {
	return &Manager{
		vocab:    NewVocabulary(),
		inverted: NewInvertedIndex(),
		docs:     make(map[string]*document),
	}
}

// Add indexes a document under the given ID. The document is immediately
// searchable. Fails with ErrDuplicateDocument if the ID is already indexed
// and ErrInvalidParameter on an empty ID; validation happens before any
// mutation, so a failed Add leaves no observable change.
func (m *Manager) Add(id string, tokens []string) error {
	if id == "" {
		return fmt.Errorf("%w: empty document id", ErrInvalidParameter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDocument, id)
	}

	tf := BuildDocumentVector(m.vocab, tokens)
	m.inverted.Add(id, tf.Dimensions())
	m.docs[id] = &document{
		tokenCount: len(tokens),
		tf:         tf,
	}
	m.dirty = true
	return nil
}

// Remove deletes a document from the index. Fails with ErrDocumentNotFound
// if the ID is not indexed, leaving all state unchanged. Vocabulary indices
// assigned to the document's terms persist; only posting sets shrink.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.docs[id]
	if !exists {
		return fmt.Errorf("%w: %q", ErrDocumentNotFound, id)
	}

	m.inverted.Remove(id, doc.tf.Dimensions())
	delete(m.docs, id)
	m.dirty = true
	return nil
}

// Contains reports whether a document ID is currently indexed.
func (m *Manager) Contains(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.docs[id]
	return exists
}

// Search ranks documents against the query tokens. Unknown query terms are
// dropped; a query matching nothing returns an empty slice, never an error.
// Fails with ErrInvalidParameter when threshold is outside [0,1] or
// maxResults is not positive.
func (m *Manager) Search(tokens []string, threshold float64, maxResults int) ([]ScoredDoc, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidParameter, threshold)
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("%w: maxResults %d must be positive", ErrInvalidParameter, maxResults)
	}

	// A mutation can land between a reweight and this read lock, leaving
	// documents with nil weights. Re-check under the read lock and retry
	// until the index is observed clean.
	m.mu.RLock()
	for m.dirty {
		m.mu.RUnlock()
		m.reweightIfDirty()
		m.mu.RLock()
	}
	defer m.mu.RUnlock()

	queryTF := BuildQueryVector(m.vocab, tokens)
	if len(queryTF) == 0 {
		return []ScoredDoc{}, nil
	}

	query := Weight(queryTF, m.inverted.DocFreq, len(m.docs))
	queryNorm := query.Norm()
	candidates := m.inverted.Candidates(query.Dimensions())

	lookup := func(docID string) (SparseVector, float64, bool) {
		doc, ok := m.docs[docID]
		if !ok {
			return nil, 0, false
		}
		return doc.weights, doc.norm, true
	}

	return Rank(query, queryNorm, candidates, lookup, threshold, maxResults), nil
}

// Stats reports document count, vocabulary size, and the average number of
// non-zero dimensions per document. Read-only, no side effects.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := Stats{
		DocumentCount:  len(m.docs),
		VocabularySize: m.vocab.Size(),
	}
	if len(m.docs) > 0 {
		var dims int
		for _, doc := range m.docs {
			dims += len(doc.tf)
		}
		stats.AvgDimensionsPerDocument = float64(dims) / float64(len(m.docs))
	}
	return stats
}

// reweightIfDirty recomputes every document's weighted vector and cached norm
// when a mutation has invalidated them. The dirty flag is re-checked under
// the write lock because a concurrent search may have already reweighted.
func (m *Manager) reweightIfDirty() {
	m.mu.RLock()
	dirty := m.dirty
	m.mu.RUnlock()
	if !dirty {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return
	}

	total := len(m.docs)
	for _, doc := range m.docs {
		doc.weights = Weight(doc.tf, m.inverted.DocFreq, total)
		doc.norm = doc.weights.Norm()
	}
	m.dirty = false
}
