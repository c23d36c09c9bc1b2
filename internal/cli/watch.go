package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/questify/questify/internal/engine"
	"github.com/questify/questify/internal/index"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and keep the collection in sync",
		Long: `Monitor a directory for changes and mirror them in the collection.

New and modified .txt and .md files are (re)indexed; deleted files are
removed from the collection. Press Ctrl+C to stop watching.

Examples:
  questify watch ./documents`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	ctx := cmd.Context()
	eng, _, cleanup, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// Start from a fully synced state.
	if added, err := syncDirectory(ctx, eng, dir); err != nil {
		return err
	} else if added > 0 {
		fmt.Printf("Indexed %d new document(s) from %s\n", added, dir)
	}

	watcher, watcherCleanup, err := setupDirWatcher(dir)
	if err != nil {
		return err
	}
	defer watcherCleanup()

	return runWatchLoop(ctx, eng, watcher)
}

// syncDirectory indexes any watched files not yet in the collection.
func syncDirectory(ctx context.Context, eng *engine.Engine, dir string) (int, error) {
	docs, err := eng.List(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		known[doc.ID] = struct{}{}
	}

	added := 0
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isWatchedFile(path) {
			return err
		}
		if _, ok := known[docIDForPath(path)]; ok {
			return nil
		}
		if _, err := eng.AddFile(ctx, path, ""); err != nil {
			return err
		}
		added++
		return nil
	})
	return added, err
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// setupDirWatcher creates a watcher over dir and its subdirectories.
func setupDirWatcher(dir string) (*fsnotify.Watcher, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watchTree(watcher, dir); err != nil {
		cleanupWatcher(watcher)
		return nil, nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching directory: %s\n", dir)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	return watcher, func() { cleanupWatcher(watcher) }, nil
}

// watchTree adds dir and every subdirectory to the watch set.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(ctx context.Context, eng *engine.Engine, watcher *fsnotify.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if err := handleWatchEvent(ctx, eng, watcher, event); err != nil && isVerbose() {
				fmt.Fprintf(os.Stderr, "Error handling event: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// handleWatchEvent mirrors a file system event into the collection.
func handleWatchEvent(ctx context.Context, eng *engine.Engine, watcher *fsnotify.Watcher, event fsnotify.Event) error {
	// A new subdirectory joins the watch set, and anything already inside
	// it (a directory moved into the tree arrives as one Create event) is
	// indexed immediately.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watchTree(watcher, event.Name); err != nil {
				return err
			}
			added, err := syncDirectory(ctx, eng, event.Name)
			if err != nil {
				return err
			}
			if added > 0 {
				fmt.Printf("Indexed %d document(s) from %s\n", added, event.Name)
			}
			return nil
		}
	}

	if !isWatchedFile(event.Name) {
		return nil
	}
	id := docIDForPath(event.Name)

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		if err := eng.RemoveDocument(ctx, id); err != nil && !errors.Is(err, index.ErrDocumentNotFound) {
			return err
		}
		fmt.Printf("Removed %s\n", id)
		return nil

	case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
		// Re-adding replaces the previous version of the document.
		if err := eng.RemoveDocument(ctx, id); err != nil && !errors.Is(err, index.ErrDocumentNotFound) {
			return err
		}
		if _, err := eng.AddFile(ctx, event.Name, ""); err != nil {
			return err
		}
		fmt.Printf("Indexed %s\n", id)
		return nil
	}

	return nil
}

func isWatchedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

func docIDForPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
