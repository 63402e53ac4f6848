// Package fsnotify re-renders Markdown files when they change on disk.
package fsnotify

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a fixed set of files. Parent directories are
// watched rather than the files themselves so that editors which replace a
// file on save are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	onChange func(path string)
	logger   *slog.Logger
}

// New creates a Watcher for paths. onChange is called with the path as given
// whenever one of the files is written or created.
func New(paths []string, onChange func(path string), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsWatcher,
		files:    make(map[string]string, len(paths)),
		onChange: onChange,
		logger:   logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", "dir", dir)
	}
	return w, nil
}

// Run dispatches change events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path, watched := w.files[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			w.logger.Debug("file changed", "path", path, "op", event.Op.String())
			w.onChange(path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
