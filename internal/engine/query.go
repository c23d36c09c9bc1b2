package engine

import (
	"strings"
	"unicode"
)

// CleanQuery collapses whitespace and strips control characters from raw
// user input before tokenization. The tokenizer handles the remaining
// normalization; this only guards against pasted garbage.
func CleanQuery(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, query)
	return strings.Join(strings.Fields(cleaned), " ")
}

// ValidateQuery reports whether the processed query terms contain at least
// one searchable term.
func ValidateQuery(terms []string) bool {
	for _, term := range terms {
		if strings.TrimSpace(term) != "" {
			return true
		}
	}
	return false
}
