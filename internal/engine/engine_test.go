package engine_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questify/questify/internal/config"
	"github.com/questify/questify/internal/docstore"
	"github.com/questify/questify/internal/engine"
	"github.com/questify/questify/internal/index"
	"github.com/questify/questify/internal/metrics"
)

func newTestEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	store, err := docstore.Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.DefaultConfig()
	return engine.New(cfg, store, opts...)
}

func TestEngineAddAndSearch(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "ml", "machine learning and artificial intelligence"))
	require.NoError(t, e.AddDocument(ctx, "cooking", "pasta recipes with tomato sauce"))

	resp, err := e.Search(ctx, "machine learning", nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "ml", resp.Results[0].DocID)
	assert.Greater(t, resp.Results[0].Score, 0.0)
	assert.Equal(t, []string{"machine", "learning"}, resp.QueryTerms)
	assert.NotEmpty(t, resp.Results[0].Preview)
}

func TestEngineSearchNoMatch(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "d1", "machine learning"))

	resp, err := e.Search(ctx, "quantum chromodynamics", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestEngineDuplicateAdd(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "d1", "original content"))
	err := e.AddDocument(ctx, "d1", "replacement content")
	assert.ErrorIs(t, err, index.ErrDuplicateDocument)

	// Stored content is untouched by the failed add.
	docs, err := e.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "original content", docs[0].Content)
}

func TestEngineAddRollsBackIndexOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newFailingStore()
	e := engine.New(config.DefaultConfig(), store)

	err := e.AddDocument(ctx, "d1", "machine learning")
	require.Error(t, err)

	// Indexing is rolled back, so a retry against a healthy store succeeds.
	store.fail = false
	assert.NoError(t, e.AddDocument(ctx, "d1", "machine learning"))
}

func TestEngineRemove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "d1", "machine learning"))
	require.NoError(t, e.RemoveDocument(ctx, "d1"))

	resp, err := e.Search(ctx, "machine", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)

	assert.ErrorIs(t, e.RemoveDocument(ctx, "d1"), index.ErrDocumentNotFound)
}

func TestEngineRebuild(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "docs.db")

	store, err := docstore.Open(path)
	require.NoError(t, err)
	cfg := config.DefaultConfig()

	first := engine.New(cfg, store)
	require.NoError(t, first.AddDocument(ctx, "d1", "machine learning models"))
	require.NoError(t, store.Close())

	reopened, err := docstore.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	second := engine.New(cfg, reopened)
	require.NoError(t, second.Rebuild(ctx))

	resp, err := second.Search(ctx, "machine learning", nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "d1", resp.Results[0].DocID)
}

func TestEngineSearchOptions(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "d1", "machine learning"))
	require.NoError(t, e.AddDocument(ctx, "d2", "machine vision"))

	resp, err := e.Search(ctx, "machine", &engine.SearchOptions{Threshold: 0.01, MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 1)

	_, err = e.Search(ctx, "machine", &engine.SearchOptions{Threshold: 1.5, MaxResults: 5})
	assert.ErrorIs(t, err, index.ErrInvalidParameter)
}

func TestEngineAddDirectory(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	dir := t.TempDir()
	require.NoError(t, writeTestFile(dir, "a.txt", "machine learning"))
	require.NoError(t, writeTestFile(dir, "b.md", "deep neural networks"))

	added, err := e.AddDirectory(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	resp, err := e.Search(ctx, "neural networks", nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "b", resp.Results[0].DocID)
}

func TestEngineStats(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	require.NoError(t, e.AddDocument(ctx, "d1", "machine learning models"))
	_, err := e.Search(ctx, "machine", nil)
	require.NoError(t, err)

	stats, err := e.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Index.DocumentCount)
	assert.Equal(t, 1, stats.Storage.DocumentCount)
	assert.Equal(t, int64(1), stats.Search.TotalSearches)
	assert.Equal(t, stats.Search.LastDuration, stats.Search.AverageDuration)
}

func TestEngineMetricsUpdated(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	e := newTestEngine(t, engine.WithMetrics(m))

	require.NoError(t, e.AddDocument(ctx, "d1", "machine learning models"))
	_, err := e.Search(ctx, "machine", nil)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		if len(fam.GetMetric()) == 1 && fam.GetMetric()[0].GetGauge() != nil {
			values[fam.GetName()] = fam.GetMetric()[0].GetGauge().GetValue()
		}
		if len(fam.GetMetric()) == 1 && fam.GetMetric()[0].GetCounter() != nil {
			values[fam.GetName()] = fam.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["questify_documents_indexed"])
	assert.Equal(t, 3.0, values["questify_vocabulary_size"])
	assert.Equal(t, 1.0, values["questify_searches_total"])
}

func writeTestFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
}

// failingStore rejects writes until fail is cleared.
type failingStore struct {
	fail bool
	docs []docstore.Document
}

func newFailingStore() *failingStore { return &failingStore{fail: true} }

func (s *failingStore) Add(_ context.Context, doc docstore.Document) error {
	if s.fail {
		return errors.New("store unavailable")
	}
	s.docs = append(s.docs, doc)
	return nil
}

func (s *failingStore) Get(_ context.Context, id string) (docstore.Document, error) {
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return docstore.Document{}, docstore.ErrNotFound
}

func (s *failingStore) Delete(_ context.Context, id string) error {
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return docstore.ErrNotFound
}

func (s *failingStore) List(_ context.Context) ([]docstore.Document, error) {
	return s.docs, nil
}

func (s *failingStore) Stats(_ context.Context) (docstore.Stats, error) {
	return docstore.Stats{DocumentCount: len(s.docs)}, nil
}

func (s *failingStore) Close() error { return nil }
