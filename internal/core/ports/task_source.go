package ports

import "go.trai.ch/gantt/internal/core/domain"

// TaskSource loads an ordered task list into a dependency graph.
// Implementations are responsible for splitting multi-resource fields and
// validating per-record fields; the engine assumes records are well formed.
//
//go:generate mockgen -source=task_source.go -destination=mocks/mock_task_source.go -package=mocks
type TaskSource interface {
	// Load reads the task list at the given path, preserving input order.
	Load(path string) (*domain.Graph, error)
}
