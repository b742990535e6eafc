package domain

import "time"

// Task is a unit of work to be placed on the project timeline. Tasks are
// immutable once constructed; the scheduling engine never mutates them.
//
// The position of a task in the input list is itself significant: when two
// tasks contend for a resource or a time slot, the one listed earlier always
// wins. There is no other priority signal.
type Task struct {
	Name         InternedString
	Duration     int // working days, must be positive
	Resources    []InternedString
	Dependencies []InternedString
}

// ScheduledTask is a Task with its committed date range. Start and End are
// inclusive calendar dates spanning exactly Duration working days;
// non-working days inside the range are spanned but do not count.
type ScheduledTask struct {
	Task
	Start time.Time
	End   time.Time
}

// Interval is a committed inclusive date range on a resource timeline.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two inclusive intervals share at least one day.
func (i Interval) Overlaps(o Interval) bool {
	return !i.Start.After(o.End) && !o.Start.After(i.End)
}
