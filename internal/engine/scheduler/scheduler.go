// Package scheduler assigns concrete start and end dates to an ordered list
// of tasks under resource-contention and dependency constraints.
//
// The algorithm is greedy list scheduling: tasks are placed strictly in
// input order, each as early as its dependencies and resources allow, and a
// committed placement is never revisited. Input order is the sole priority
// signal, which makes the result a pure function of the task list and the
// calendar rules.
package scheduler

import (
	"strconv"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/zerr"
)

// Schedule computes a start and end date for every task in the graph.
//
// It either returns a complete schedule in input order, with every
// invariant holding (no double-booked resource, every task strictly after
// its dependencies, every range spanning exactly its duration in working
// days), or a single error identifying the offending task. There is no
// partial output.
func Schedule(
	g *domain.Graph,
	cal *calendar.Calendar,
	start time.Time,
) ([]domain.ScheduledTask, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	state := newRunState(g, cal, start)
	for task := range g.Walk() {
		if err := state.place(task); err != nil {
			return nil, err
		}
	}
	return state.schedule, nil
}

// runState is the mutable state of a single scheduling run. It is owned
// exclusively by one Schedule invocation and discarded when it returns, so
// concurrent runs are independent.
type runState struct {
	cal   *calendar.Calendar
	start time.Time

	scheduled map[domain.InternedString]domain.ScheduledTask
	timelines map[domain.InternedString][]domain.Interval
	schedule  []domain.ScheduledTask
}

func newRunState(g *domain.Graph, cal *calendar.Calendar, start time.Time) *runState {
	return &runState{
		cal:       cal,
		start:     calendar.Day(start),
		scheduled: make(map[domain.InternedString]domain.ScheduledTask, g.TaskCount()),
		timelines: make(map[domain.InternedString][]domain.Interval),
		schedule:  make([]domain.ScheduledTask, 0, g.TaskCount()),
	}
}

// place finds the earliest valid window for a task and commits it.
func (s *runState) place(task *domain.Task) error {
	if task.Duration <= 0 {
		err := zerr.With(domain.ErrInvalidDuration, "task", task.Name.String())
		return zerr.With(err, "duration", strconv.Itoa(task.Duration))
	}
	if len(task.Resources) == 0 {
		return zerr.With(domain.ErrNoResources, "task", task.Name.String())
	}

	earliest, err := s.dependencyFloor(task)
	if err != nil {
		return err
	}

	window := s.search(task, earliest)
	s.commit(task, window)
	return nil
}

// dependencyFloor computes the earliest date the task may start based on its
// dependencies: the project start if it has none, otherwise the first
// working day strictly after the latest-finishing dependency.
func (s *runState) dependencyFloor(task *domain.Task) (time.Time, error) {
	var latestEnd time.Time
	for _, dep := range task.Dependencies {
		done, ok := s.scheduled[dep]
		if !ok {
			// Graph validation already rejected unknown dependencies and
			// cycles, so this dependency exists but is listed too late.
			err := zerr.With(domain.ErrDependencyNotScheduled, "task", task.Name.String())
			return time.Time{}, zerr.With(err, "dependency", dep.String())
		}
		if done.End.After(latestEnd) {
			latestEnd = done.End
		}
	}

	if latestEnd.IsZero() {
		return s.start, nil
	}
	return s.cal.Advance(latestEnd, 1), nil
}

// search walks the candidate start forward until the task's full window is
// free on every required resource. Each retry jumps past a conflicting
// interval, so the candidate advances strictly and the loop terminates once
// it clears the finite committed timelines.
func (s *runState) search(task *domain.Task, earliest time.Time) domain.Interval {
	start := s.cal.Advance(earliest, 0)
	for {
		window := domain.Interval{
			Start: start,
			End:   s.cal.Advance(start, task.Duration-1),
		}

		conflict, found := s.firstConflict(task, window)
		if !found {
			return window
		}
		start = s.cal.Advance(conflict.End, 1)
	}
}

// firstConflict returns the first committed interval on any of the task's
// resources that overlaps the candidate window.
func (s *runState) firstConflict(task *domain.Task, window domain.Interval) (domain.Interval, bool) {
	for _, res := range task.Resources {
		for _, committed := range s.timelines[res] {
			if committed.Overlaps(window) {
				return committed, true
			}
		}
	}
	return domain.Interval{}, false
}

// commit records the placement and books the window on every required
// resource. The search guarantees no overlap, so each timeline keeps its
// non-overlap invariant by construction.
func (s *runState) commit(task *domain.Task, window domain.Interval) {
	done := domain.ScheduledTask{
		Task:  *task,
		Start: window.Start,
		End:   window.End,
	}
	s.scheduled[task.Name] = done
	s.schedule = append(s.schedule, done)

	for _, res := range task.Resources {
		s.timelines[res] = append(s.timelines[res], window)
	}
}
