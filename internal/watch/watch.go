// Package watch re-runs an action whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a single file.
type Watcher struct {
	path   string
	logger *slog.Logger
}

// New creates a Watcher for path.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, logger: logger}, nil
}

// Run calls onChange each time the file is written or replaced, until ctx
// is done. It blocks and returns nil on cancellation.
//
// The parent directory is watched rather than the file itself so that
// editors which save via rename keep triggering events.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(w.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	w.logger.Info("watching document for changes", slog.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("document watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Info("document changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("document watch error", slog.String("error", err.Error()))
		}
	}
}
