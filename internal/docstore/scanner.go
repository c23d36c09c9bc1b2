package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultScanExtensions are the file extensions ingested by directory scans.
var DefaultScanExtensions = []string{".txt", ".md"}

// scanConcurrency bounds parallel file reads during a directory scan.
const scanConcurrency = 8

// ScanFile reads a single file into a Document. The document ID defaults to
// the file name without extension when id is empty.
func ScanFile(path, id string) (Document, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if id == "" {
		base := filepath.Base(path)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Document{
		ID:       id,
		Content:  string(content),
		Filename: filepath.Base(path),
		Size:     int64(len(content)),
		AddedAt:  time.Now().UTC(),
	}, nil
}

// ScanDirectory walks dir recursively and reads every file with one of the
// given extensions (DefaultScanExtensions when nil) into a Document. Files
// are read concurrently; results are returned sorted by ID for deterministic
// ingestion order.
func ScanDirectory(ctx context.Context, dir string, extensions []string) ([]Document, error) {
	if extensions == nil {
		extensions = DefaultScanExtensions
	}
	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = struct{}{}
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := wanted[strings.ToLower(filepath.Ext(path))]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	var (
		mu   sync.Mutex
		docs = make([]Document, 0, len(paths))
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := ScanFile(path, "")
			if err != nil {
				return err
			}
			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
