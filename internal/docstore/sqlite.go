package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	content  TEXT NOT NULL,
	filename TEXT NOT NULL DEFAULT '',
	size     INTEGER NOT NULL,
	added_at TIMESTAMP NOT NULL
);`

// SQLiteStore persists documents in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite-backed document store at path.
// Parent directories are created as needed. An empty path opens an in-memory
// store, useful for tests.
func Open(path string) (*SQLiteStore, error) {
	dsn := ":memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// modernc.org/sqlite serializes writes per connection; a single
	// connection avoids SQLITE_BUSY on concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Add inserts a document. Fails if the ID already exists.
func (s *SQLiteStore) Add(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("empty document id")
	}
	if doc.AddedAt.IsZero() {
		doc.AddedAt = time.Now().UTC()
	}
	doc.Size = int64(len(doc.Content))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, content, filename, size, added_at) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Content, doc.Filename, doc.Size, doc.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store document %q: %w", doc.ID, err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Document, error) {
	var doc Document
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, filename, size, added_at FROM documents WHERE id = ?`, id,
	).Scan(&doc.ID, &doc.Content, &doc.Filename, &doc.Size, &doc.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to load document %q: %w", id, err)
	}
	return doc, nil
}

// Delete removes a document by ID. Fails with ErrNotFound if absent.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

// List returns all documents ordered by ID.
func (s *SQLiteStore) List(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, filename, size, added_at FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Content, &doc.Filename, &doc.Size, &doc.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

// Stats reports document count and size statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var totalSize sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM documents`,
	).Scan(&stats.DocumentCount, &totalSize)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to compute storage stats: %w", err)
	}
	stats.TotalSizeBytes = totalSize.Int64
	if stats.DocumentCount > 0 {
		stats.AvgDocumentSize = float64(stats.TotalSizeBytes) / float64(stats.DocumentCount)
	}
	return stats, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
