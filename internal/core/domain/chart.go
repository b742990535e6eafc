package domain

import "time"

// ChartFileName is the name of the chart configuration file, discovered by
// walking up from the working directory.
const ChartFileName = "gantt.yaml"

// ChartConfig holds the chart-level settings that the caller supplies to a
// scheduling run: the project start date, the calendar rules, and where the
// rendered chart goes.
type ChartConfig struct {
	Start        time.Time
	WorkWeekends bool
	WeekendDays  []time.Weekday
	Holidays     []time.Time
	SVGPath      string

	// Path is the location of the chart file this config was read from.
	// Empty when the defaults apply.
	Path string
}

// DefaultWeekend is the default set of non-working weekdays.
var DefaultWeekend = []time.Weekday{time.Saturday, time.Sunday}
