// Package engine wires the tokenizer, the in-memory TF-IDF index, and the
// document store into the search engine facade used by the CLI and the HTTP
// server. The index is never persisted; Rebuild restores it from the store.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/questify/questify/internal/config"
	"github.com/questify/questify/internal/docstore"
	"github.com/questify/questify/internal/index"
	"github.com/questify/questify/internal/metrics"
	"github.com/questify/questify/internal/tokenizer"
)

// SearchResult is a ranked hit enriched with stored document metadata.
type SearchResult struct {
	DocID    string  `json:"doc_id"`
	Score    float64 `json:"score"`
	Filename string  `json:"filename,omitempty"`
	Preview  string  `json:"preview,omitempty"`
}

// SearchOptions overrides the configured query defaults. A negative
// Threshold or a non-positive MaxResults leaves the corresponding default in
// place.
type SearchOptions struct {
	Threshold  float64
	MaxResults int
}

// SearchResponse carries the ranked results plus query diagnostics.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	QueryTerms []string       `json:"query_terms"`
	Duration   time.Duration  `json:"duration"`
}

// SearchStats tracks query timing across the engine's lifetime.
type SearchStats struct {
	TotalSearches   int64         `json:"total_searches"`
	LastDuration    time.Duration `json:"last_duration"`
	AverageDuration time.Duration `json:"average_duration"`
}

// Stats aggregates index, storage, and search statistics.
type Stats struct {
	Index   index.Stats    `json:"index"`
	Storage docstore.Stats `json:"storage"`
	Search  SearchStats    `json:"search"`
}

const previewLength = 200

// Engine is the orchestrating facade over the search core and its
// collaborators.
type Engine struct {
	cfg   *config.Config
	tok   *tokenizer.Tokenizer
	idx   *index.Manager
	store docstore.Store
	log   *logrus.Entry
	m     *metrics.Metrics // optional

	statsMu       sync.Mutex
	totalSearches int64
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches Prometheus collectors updated on every operation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.m = m }
}

// WithLogger overrides the default logger.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine over the given store using cfg for tokenizer
// settings and query defaults.
func New(cfg *config.Config, store docstore.Store, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		tok: tokenizer.New(tokenizer.Options{
			MinTokenLength:  cfg.Tokenizer.MinTokenLength,
			RemoveStopwords: cfg.Tokenizer.RemoveStopwords,
		}),
		idx:   index.NewManager(),
		store: store,
		log:   logrus.WithField("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rebuild restores the in-memory index from the document store. Called once
// at startup; the index itself is never persisted.
func (e *Engine) Rebuild(ctx context.Context) error {
	docs, err := e.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load documents for rebuild: %w", err)
	}

	start := time.Now()
	for _, doc := range docs {
		if err := e.idx.Add(doc.ID, e.tok.Tokenize(doc.Content)); err != nil {
			return fmt.Errorf("failed to index stored document %q: %w", doc.ID, err)
		}
	}
	e.log.WithFields(logrus.Fields{
		"documents": len(docs),
		"took":      time.Since(start),
	}).Debug("index rebuilt from store")

	e.updateIndexMetrics()
	return nil
}

// AddDocument tokenizes and indexes content under id and persists it in the
// document store. On storage failure the index entry is rolled back, so a
// failed add leaves no observable change.
func (e *Engine) AddDocument(ctx context.Context, id, content string) error {
	if err := e.idx.Add(id, e.tok.Tokenize(content)); err != nil {
		return err
	}

	err := e.store.Add(ctx, docstore.Document{ID: id, Content: content})
	if err != nil {
		if rbErr := e.idx.Remove(id); rbErr != nil {
			e.log.WithError(rbErr).WithField("doc_id", id).Error("failed to roll back index entry")
		}
		return fmt.Errorf("failed to persist document %q: %w", id, err)
	}

	e.log.WithField("doc_id", id).Debug("document added")
	e.updateIndexMetrics()
	return nil
}

// AddFile ingests a single file, returning the assigned document ID.
func (e *Engine) AddFile(ctx context.Context, path, id string) (string, error) {
	doc, err := docstore.ScanFile(path, id)
	if err != nil {
		return "", err
	}

	if err := e.idx.Add(doc.ID, e.tok.Tokenize(doc.Content)); err != nil {
		return "", err
	}
	if err := e.store.Add(ctx, doc); err != nil {
		if rbErr := e.idx.Remove(doc.ID); rbErr != nil {
			e.log.WithError(rbErr).WithField("doc_id", doc.ID).Error("failed to roll back index entry")
		}
		return "", fmt.Errorf("failed to persist document %q: %w", doc.ID, err)
	}

	e.updateIndexMetrics()
	return doc.ID, nil
}

// AddDirectory ingests every matching file under dir, returning the number
// of documents added.
func (e *Engine) AddDirectory(ctx context.Context, dir string) (int, error) {
	docs, err := docstore.ScanDirectory(ctx, dir, nil)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, doc := range docs {
		if err := e.idx.Add(doc.ID, e.tok.Tokenize(doc.Content)); err != nil {
			return added, err
		}
		if err := e.store.Add(ctx, doc); err != nil {
			if rbErr := e.idx.Remove(doc.ID); rbErr != nil {
				e.log.WithError(rbErr).WithField("doc_id", doc.ID).Error("failed to roll back index entry")
			}
			return added, fmt.Errorf("failed to persist document %q: %w", doc.ID, err)
		}
		added++
	}

	e.log.WithFields(logrus.Fields{"dir": dir, "added": added}).Debug("directory ingested")
	e.updateIndexMetrics()
	return added, nil
}

// RemoveDocument deletes a document from the index and the store.
func (e *Engine) RemoveDocument(ctx context.Context, id string) error {
	if err := e.idx.Remove(id); err != nil {
		return err
	}
	if err := e.store.Delete(ctx, id); err != nil {
		// Index and store disagreeing is unexpected but not fatal; the
		// index is authoritative for search and the next rebuild heals it.
		e.log.WithError(err).WithField("doc_id", id).Warn("document missing from store during removal")
	}

	e.log.WithField("doc_id", id).Debug("document removed")
	e.updateIndexMetrics()
	return nil
}

// Search runs a keyword query and returns ranked results with previews.
// A nil opts uses the configured defaults. A query matching nothing yields
// an empty result list, never an error.
func (e *Engine) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error) {
	threshold := e.cfg.Search.Threshold
	maxResults := e.cfg.Search.MaxResults
	if opts != nil {
		if opts.Threshold >= 0 {
			threshold = opts.Threshold
		}
		if opts.MaxResults > 0 {
			maxResults = opts.MaxResults
		}
	}

	terms := e.tok.Tokenize(CleanQuery(query))

	start := time.Now()
	hits, err := e.idx.Search(terms, threshold, maxResults)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)
	e.recordSearch(took, len(hits))

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		result := SearchResult{DocID: hit.DocID, Score: hit.Score}
		if doc, err := e.store.Get(ctx, hit.DocID); err == nil {
			result.Filename = doc.Filename
			result.Preview = preview(doc.Content, previewLength)
		}
		results = append(results, result)
	}

	return &SearchResponse{
		Results:    results,
		QueryTerms: terms,
		Duration:   took,
	}, nil
}

// List returns every stored document.
func (e *Engine) List(ctx context.Context) ([]docstore.Document, error) {
	return e.store.List(ctx)
}

// Stats aggregates index, storage, and search statistics.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	storageStats, err := e.store.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}

	e.statsMu.Lock()
	searchStats := SearchStats{
		TotalSearches: e.totalSearches,
		LastDuration:  e.lastDuration,
	}
	if e.totalSearches > 0 {
		searchStats.AverageDuration = e.totalDuration / time.Duration(e.totalSearches)
	}
	e.statsMu.Unlock()

	return Stats{
		Index:   e.idx.Stats(),
		Storage: storageStats,
		Search:  searchStats,
	}, nil
}

func (e *Engine) recordSearch(took time.Duration, resultCount int) {
	e.statsMu.Lock()
	e.totalSearches++
	e.totalDuration += took
	e.lastDuration = took
	e.statsMu.Unlock()

	if e.m != nil {
		e.m.SearchesTotal.Inc()
		e.m.SearchDuration.Observe(took.Seconds())
		e.m.SearchResults.Observe(float64(resultCount))
	}
}

func (e *Engine) updateIndexMetrics() {
	if e.m == nil {
		return
	}
	stats := e.idx.Stats()
	e.m.DocumentsIndexed.Set(float64(stats.DocumentCount))
	e.m.VocabularySize.Set(float64(stats.VocabularySize))
}

// preview returns a snippet of at most maxLength characters, cut at a word
// boundary when one is reasonably close to the end.
func preview(content string, maxLength int) string {
	if len(content) <= maxLength {
		return content
	}
	snippet := content[:maxLength]
	if cut := lastSpace(snippet); cut > maxLength*4/5 {
		snippet = snippet[:cut]
	}
	return snippet + "..."
}

func lastSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}
