package ports

import (
	"context"
	"iter"
)

// Watcher watches a fixed set of files for changes.
type Watcher interface {
	// Start begins watching the given paths. It returns an error if any
	// path cannot be watched.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of changed file paths. The iterator ends
	// when the watcher is stopped or its context is cancelled.
	Events() iter.Seq[string]
}
