package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFile runs fn whenever the file at path is written, created or
// renamed over, until ctx is done. Failures of fn are logged and do not stop
// the watch.
func watchFile(ctx context.Context, path string, logger *slog.Logger, fn func() error) error {
	w, err := newWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("tablegen: watching", "path", path)
	return watchLoop(ctx, w, path, logger, fn)
}

// newWatcher watches the directory of path, so that editors replacing the
// file are seen.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tablegen: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("tablegen: watch %s: %w", path, err)
	}
	return w, nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, logger *slog.Logger, fn func() error) error {
	path = filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("tablegen: file changed", "path", path, "op", event.Op.String())
			if err := fn(); err != nil {
				logger.Warn("tablegen: regenerate failed", "path", path, "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("tablegen: watcher error", "error", err)
		}
	}
}
