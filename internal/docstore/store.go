// Package docstore persists raw document text and metadata. The search index
// is never persisted; it is rebuilt from this store at startup.
package docstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a document ID is not present in the store.
var ErrNotFound = errors.New("document not found in store")

// Document is a stored document with its metadata.
type Document struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Filename string    `json:"filename,omitempty"`
	Size     int64     `json:"size"`
	AddedAt  time.Time `json:"added_at"`
}

// Stats reports storage statistics.
type Stats struct {
	DocumentCount   int     `json:"document_count"`
	TotalSizeBytes  int64   `json:"total_size_bytes"`
	AvgDocumentSize float64 `json:"avg_document_size"`
}

// Store is the document storage interface consumed by the engine.
type Store interface {
	Add(ctx context.Context, doc Document) error
	Get(ctx context.Context, id string) (Document, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Document, error)
	Stats(ctx context.Context) (Stats, error)
	Close() error
}
