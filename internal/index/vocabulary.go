package index

// Vocabulary maps terms to stable dimension indices. Indices are assigned in
// insertion order and are never reused or reassigned, even after the last
// document containing a term is removed, so cached vectors of untouched
// documents stay valid across mutations.
type Vocabulary struct {
	indices map[string]int
	terms   []string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		indices: make(map[string]int),
	}
}

// Resolve returns the dimension index for term, assigning the next unused
// index if the term has not been seen before.
func (v *Vocabulary) Resolve(term string) int {
	if idx, ok := v.indices[term]; ok {
		return idx
	}
	idx := len(v.terms)
	v.indices[term] = idx
	v.terms = append(v.terms, term)
	return idx
}

// Lookup returns the dimension index for term without assigning one.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	idx, ok := v.indices[term]
	return idx, ok
}

// Term returns the term assigned to the given dimension index.
func (v *Vocabulary) Term(index int) (string, bool) {
	if index < 0 || index >= len(v.terms) {
		return "", false
	}
	return v.terms[index], true
}

// Size returns the number of assigned dimensions.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}
