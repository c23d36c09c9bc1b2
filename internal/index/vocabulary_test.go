package index

import "testing"

func TestVocabularyResolve(t *testing.T) {
	vocab := NewVocabulary()

	if idx := vocab.Resolve("cat"); idx != 0 {
		t.Errorf("first term index = %d, want 0", idx)
	}
	if idx := vocab.Resolve("dog"); idx != 1 {
		t.Errorf("second term index = %d, want 1", idx)
	}

	// Resolving an existing term must return the same index.
	if idx := vocab.Resolve("cat"); idx != 0 {
		t.Errorf("re-resolved index = %d, want 0", idx)
	}
	if vocab.Size() != 2 {
		t.Errorf("vocabulary size = %d, want 2", vocab.Size())
	}
}

func TestVocabularyLookup(t *testing.T) {
	vocab := NewVocabulary()
	vocab.Resolve("cat")

	tests := []struct {
		name    string
		term    string
		wantIdx int
		wantOK  bool
	}{
		{"known term", "cat", 0, true},
		{"unknown term", "dog", 0, false},
		{"empty term", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := vocab.Lookup(tt.term)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.term, ok, tt.wantOK)
			}
			if ok && idx != tt.wantIdx {
				t.Errorf("Lookup(%q) = %d, want %d", tt.term, idx, tt.wantIdx)
			}
		})
	}

	// Lookup never assigns.
	if vocab.Size() != 1 {
		t.Errorf("vocabulary size after lookups = %d, want 1", vocab.Size())
	}
}

func TestVocabularyTerm(t *testing.T) {
	vocab := NewVocabulary()
	vocab.Resolve("cat")
	vocab.Resolve("dog")

	if term, ok := vocab.Term(1); !ok || term != "dog" {
		t.Errorf("Term(1) = %q, %v, want \"dog\", true", term, ok)
	}
	if _, ok := vocab.Term(2); ok {
		t.Error("Term(2) should not exist")
	}
	if _, ok := vocab.Term(-1); ok {
		t.Error("Term(-1) should not exist")
	}
}
