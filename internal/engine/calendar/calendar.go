// Package calendar implements working-day arithmetic for the scheduling
// engine: which dates are workable and how to step across them.
package calendar

import "time"

// DayFormat is the canonical date layout used throughout the chart.
const DayFormat = "2006-01-02"

// Calendar answers "is this a working day?" and "advance n working days".
// The zero rules are Saturday and Sunday off with no holidays. A Calendar is
// configured once and then treated as read-only; all methods are pure
// functions of the date and the configured rules.
type Calendar struct {
	weekend  map[time.Weekday]struct{}
	holidays map[time.Time]struct{}
}

// New creates a Calendar with the default weekend (Saturday and Sunday).
func New() *Calendar {
	c := &Calendar{
		weekend:  make(map[time.Weekday]struct{}),
		holidays: make(map[time.Time]struct{}),
	}
	c.SetWeekend(time.Saturday, time.Sunday)
	return c
}

// SetWeekend replaces the set of weekly non-working days. An empty call
// means every weekday is workable (the "work weekends" mode).
func (c *Calendar) SetWeekend(days ...time.Weekday) {
	c.weekend = make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		c.weekend[d] = struct{}{}
	}
}

// AddHoliday excludes a single calendar date from the working set.
func (c *Calendar) AddHoliday(d time.Time) {
	c.holidays[Day(d)] = struct{}{}
}

// IsWorkingDay reports whether work may be performed on the given date.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	d = Day(d)
	if _, off := c.weekend[d.Weekday()]; off {
		return false
	}
	_, holiday := c.holidays[d]
	return !holiday
}

// Advance returns the date reached by moving forward exactly n working days
// from d, skipping non-working days entirely. n = 0 snaps onto a working
// day: it returns d itself if d is workable, otherwise the next working day.
// The returned date is always a working day.
//
// Callers must pass n >= 0; backward movement is not defined.
func (c *Calendar) Advance(d time.Time, n int) time.Time {
	d = Day(d)
	for !c.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	for i := 0; i < n; i++ {
		d = d.AddDate(0, 0, 1)
		for !c.IsWorkingDay(d) {
			d = d.AddDate(0, 0, 1)
		}
	}
	return d
}

// WorkingDaysBetween counts the working days in the inclusive range
// [start, end]. It returns 0 when end is before start.
func (c *Calendar) WorkingDaysBetween(start, end time.Time) int {
	start, end = Day(start), Day(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// Day normalizes a time to its calendar date: midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date constructs a normalized calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
