// Package tasklist implements the CSV task source.
//
// The task list is a CSV file with the header columns "Task", "Duration",
// "Resource" and "Dependency". The resource column is a "/"-delimited list
// of resource names; the dependency column is empty or a "/"-delimited list
// of task names. Row order is preserved: it is the scheduling priority.
package tasklist

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Delimiter separates multiple values inside the resource and dependency
// columns.
const Delimiter = "/"

var _ ports.TaskSource = (*Source)(nil)

// Source implements ports.TaskSource for CSV task lists.
type Source struct{}

// NewSource creates a new CSV task source.
func NewSource() *Source {
	return &Source{}
}

// columns maps the required header names to their positions in the file.
type columns struct {
	task       int
	duration   int
	resource   int
	dependency int
}

// Load reads the CSV file at path into a dependency graph, preserving row
// order. Field-level validation happens here so the engine only ever sees
// well-formed records; errors carry the row number and task name.
func (s *Source) Load(path string) (*domain.Graph, error) {
	f, err := os.Open(path) // #nosec G304 -- path is the user-supplied task list
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaskListReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaskListParseFailed.Error()), "path", path)
	}
	if len(records) == 0 {
		return nil, zerr.With(domain.ErrTaskListParseFailed, "path", path)
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	g := domain.NewGraph()
	for i, record := range records[1:] {
		row := i + 2 // 1-based, after the header
		task, rowErr := parseRow(record, cols, row)
		if rowErr != nil {
			return nil, rowErr
		}
		if addErr := g.AddTask(task); addErr != nil {
			return nil, zerr.With(addErr, "row", strconv.Itoa(row))
		}
	}
	return g, nil
}

// mapColumns locates the required header columns. Header matching is
// case-insensitive so hand-edited files don't trip on capitalization.
func mapColumns(header []string) (columns, error) {
	cols := columns{task: -1, duration: -1, resource: -1, dependency: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "task":
			cols.task = i
		case "duration":
			cols.duration = i
		case "resource":
			cols.resource = i
		case "dependency":
			cols.dependency = i
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{"Task", cols.task},
		{"Duration", cols.duration},
		{"Resource", cols.resource},
	}
	for _, col := range required {
		if col.idx < 0 {
			return cols, zerr.With(domain.ErrMissingColumn, "column", col.name)
		}
	}
	// The dependency column is optional; a list without it is a flat plan.
	return cols, nil
}

func parseRow(record []string, cols columns, row int) (*domain.Task, error) {
	name := strings.TrimSpace(field(record, cols.task))
	if name == "" {
		err := zerr.With(domain.ErrTaskListParseFailed, "row", strconv.Itoa(row))
		return nil, zerr.Wrap(err, "task name is empty")
	}

	duration, err := strconv.Atoi(strings.TrimSpace(field(record, cols.duration)))
	if err != nil || duration <= 0 {
		withTask := zerr.With(domain.ErrInvalidDuration, "task", name)
		return nil, zerr.With(withTask, "row", strconv.Itoa(row))
	}

	resources := splitList(field(record, cols.resource))
	if len(resources) == 0 {
		withTask := zerr.With(domain.ErrNoResources, "task", name)
		return nil, zerr.With(withTask, "row", strconv.Itoa(row))
	}

	return &domain.Task{
		Name:         domain.NewInternedString(name),
		Duration:     duration,
		Resources:    domain.NewInternedStrings(resources),
		Dependencies: domain.NewInternedStrings(splitList(field(record, cols.dependency))),
	}, nil
}

// field returns the record value at idx, or "" when the column is absent or
// the record is short.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// splitList splits a "/"-delimited cell into trimmed, non-empty values.
func splitList(cell string) []string {
	parts := strings.Split(cell, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
