package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the chart.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDependencyNotScheduled is returned when a dependency exists but is listed
	// after its dependent. Tasks are scheduled strictly in input order, so every
	// task must appear after all of its dependencies.
	ErrDependencyNotScheduled = zerr.New("dependency is listed after its dependent, move it earlier in the task list")

	// ErrInvalidDuration is returned when a task duration is not at least one working day.
	ErrInvalidDuration = zerr.New("task duration must be at least one working day")

	// ErrNoResources is returned when a task declares no resources.
	ErrNoResources = zerr.New("task requires at least one resource")

	// ErrTaskListReadFailed is returned when the task list file cannot be read.
	ErrTaskListReadFailed = zerr.New("failed to read task list")

	// ErrTaskListParseFailed is returned when the task list cannot be parsed.
	ErrTaskListParseFailed = zerr.New("failed to parse task list")

	// ErrMissingColumn is returned when the task list is missing a required column.
	ErrMissingColumn = zerr.New("task list is missing a required column")

	// ErrConfigReadFailed is returned when the chart config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the chart config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDate is returned when a date field is not in YYYY-MM-DD form.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidWeekday is returned when a weekend day name is not a weekday.
	ErrInvalidWeekday = zerr.New("invalid weekday name")

	// ErrNoTaskList is returned when no task list path is given to render.
	ErrNoTaskList = zerr.New("no task list specified")

	// ErrRenderFailed is returned when writing a rendered chart fails.
	ErrRenderFailed = zerr.New("failed to write chart")
)
