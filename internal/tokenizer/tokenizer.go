// Package tokenizer turns raw document or query text into the normalized
// term sequence consumed by the index. The same tokenizer instance must be
// used for documents and queries so that both map into the same vocabulary.
package tokenizer

import (
	"strings"
	"unicode"
)

// DefaultMinTokenLength drops very short tokens that carry little signal.
const DefaultMinTokenLength = 3

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "will": {}, "with": {},
	"this": {}, "but": {}, "they": {}, "have": {}, "had": {}, "what": {},
	"said": {}, "each": {}, "which": {}, "their": {}, "time": {}, "if": {},
	"up": {}, "out": {}, "many": {}, "then": {}, "them": {}, "these": {},
	"so": {}, "some": {}, "her": {}, "would": {}, "make": {}, "like": {},
	"into": {}, "him": {}, "two": {}, "more": {}, "very": {}, "know": {},
	"just": {}, "first": {}, "get": {}, "over": {}, "think": {}, "also": {},
	"your": {}, "work": {}, "life": {}, "only": {}, "can": {}, "still": {},
	"should": {}, "after": {}, "being": {}, "now": {}, "made": {},
	"before": {}, "here": {}, "through": {}, "when": {}, "where": {},
}

// Options configures tokenization behavior.
type Options struct {
	MinTokenLength  int
	RemoveStopwords bool
}

// DefaultOptions returns the tokenizer defaults: minimum token length of 3
// with stopword removal enabled.
func DefaultOptions() Options {
	return Options{
		MinTokenLength:  DefaultMinTokenLength,
		RemoveStopwords: true,
	}
}

// Tokenizer produces a deterministic token sequence from raw text.
type Tokenizer struct {
	opts Options
}

// New creates a tokenizer with the given options. A non-positive
// MinTokenLength falls back to the default.
func New(opts Options) *Tokenizer {
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = DefaultMinTokenLength
	}
	return &Tokenizer{opts: opts}
}

// Tokenize lowercases text, splits on non-alphanumeric boundaries, and drops
// tokens shorter than MinTokenLength plus stopwords when enabled. The output
// preserves occurrence order and duplicates; term frequencies are counted
// downstream.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < t.opts.MinTokenLength {
			continue
		}
		if t.opts.RemoveStopwords {
			if _, isStop := stopwords[word]; isStop {
				continue
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}
