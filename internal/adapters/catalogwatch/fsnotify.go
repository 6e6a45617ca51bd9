// Package catalogwatch monitors catalog seed files for changes.
// Implements ports.SeedWatcher; used by the indexer command's watch mode so
// the serving pipeline never mutates shared state.
package catalogwatch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/finquery/finquery-go/internal/domain/ports"
)

// FSNotifyWatcher implements ports.SeedWatcher using fsnotify.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
}

// NewFSNotifyWatcher creates a new seed file watcher.
func NewFSNotifyWatcher() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FSNotifyWatcher{watcher: w}, nil
}

// Watch starts monitoring the directory and emits an event for every JSON
// seed file that is created or written.
func (w *FSNotifyWatcher) Watch(ctx context.Context, dir string) (<-chan ports.SeedEvent, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan ports.SeedEvent, 16)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Ext(event.Name) != ".json" {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}

				select {
				case events <- ports.SeedEvent{Path: event.Name}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *FSNotifyWatcher) Stop() error {
	return w.watcher.Close()
}
