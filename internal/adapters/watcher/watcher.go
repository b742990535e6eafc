// Package watcher implements file system watching for the chart's input
// files, backing the render command's watch mode.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/gantt/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements watching a fixed set of files using fsnotify. It
// watches the parent directories rather than the files themselves so that
// editors that replace files on save keep being observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	watched   map[unique.Handle[string]]struct{}

	mu     sync.Mutex
	closed bool
	events chan string
}

// NewWatcher creates a new file watcher with the default debounce window.
func NewWatcher() (*Watcher, error) {
	return NewWatcherWithWindow(DefaultDebounceWindow)
}

// NewWatcherWithWindow creates a new file watcher with an explicit debounce
// window.
func NewWatcherWithWindow(window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		watched:   make(map[unique.Handle[string]]struct{}),
		events:    make(chan string, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching the given file paths.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		w.watched[unique.Make(abs)] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced changed file paths.
func (w *Watcher) Events() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.events {
			if !yield(path) {
				return
			}
		}
	}
}

// emit is the debouncer callback pushing coalesced paths to the events
// channel. The debouncer fires asynchronously, so emit may race with
// shutdown and must not send on a closed channel.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	for _, path := range paths {
		select {
		case w.events <- path:
		default:
			// Consumer is behind, drop rather than block under the lock.
		}
	}
}

// processEvents filters raw fsnotify events down to the watched files and
// feeds them through the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		w.closed = true
		close(w.events)
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Rename) &&
				!event.Op.Has(fsnotify.Remove) {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := w.watched[unique.Make(abs)]; !ok {
				continue
			}

			w.debouncer.Add(abs)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}
