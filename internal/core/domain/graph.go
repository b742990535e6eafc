// Package domain contains the core domain models for the project timeline:
// tasks, their dependency graph, and committed schedule intervals.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is the ordered collection of tasks to schedule. Insertion order is
// preserved because it is the priority order for contention resolution.
type Graph struct {
	tasks map[InternedString]*Task
	order []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[InternedString]*Task),
	}
}

// AddTask appends a task to the graph.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task", t.Name.String())
	}
	g.tasks[t.Name] = t
	g.order = append(g.order, t.Name)
	return nil
}

// GetTask returns the task with the given name, if present.
func (g *Graph) GetTask(name InternedString) (*Task, bool) {
	t, ok := g.tasks[name]
	return t, ok
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.order)
}

// Walk returns an iterator that yields tasks in input order.
func (g *Graph) Walk() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, name := range g.order {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}

// Validate checks that every referenced dependency exists and that the
// dependency relation is acyclic, using a depth-first topological check.
// Visiting in input order keeps the reported cycle deterministic.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int, len(g.order)) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range task.Dependencies {
			if _, ok := g.tasks[dep]; !ok {
				err := zerr.With(ErrMissingDependency, "dependency", dep.String())
				return zerr.With(err, "task", u.String())
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	err := zerr.With(ErrCycleDetected, "cycle", cyclePath)
	return zerr.With(err, "task", dep.String())
}
