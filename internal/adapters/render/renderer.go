// Package render implements the terminal chart renderer: a summary table of
// the computed schedule followed by a day-grid bar chart with non-working
// days shaded.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/gantt/internal/ui/output"
	"go.trai.ch/gantt/internal/ui/style"
)

// cellWidth is the number of characters per day column: two glyphs plus a
// separator, matching the "01 " day labels.
const cellWidth = 3

var _ ports.Renderer = (*Renderer)(nil)

// Renderer writes the terminal view of a schedule.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer creates a renderer using the environment's color profile.
func NewRenderer() *Renderer {
	return NewRendererWithProfile(output.ColorProfile())
}

// NewRendererWithProfile creates a renderer with an explicit color profile.
// Tests pass termenv.Ascii for byte-stable output.
func NewRendererWithProfile(profile termenv.Profile) *Renderer {
	return &Renderer{
		output: termenv.NewOutput(io.Discard, termenv.WithProfile(profile)),
	}
}

// Render writes the summary table and the bar chart for the schedule.
func (r *Renderer) Render(
	w io.Writer,
	schedule []domain.ScheduledTask,
	cal *calendar.Calendar,
	start time.Time,
) error {
	start = calendar.Day(start)

	header := fmt.Sprintf("Chart starts %s, %d tasks, %d resources\n",
		start.Format(calendar.DayFormat), len(schedule), countResources(schedule))
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if len(schedule) == 0 {
		return nil
	}

	if err := r.renderTable(w, schedule, cal); err != nil {
		return err
	}
	return r.renderGrid(w, schedule, cal, start)
}

func countResources(schedule []domain.ScheduledTask) int {
	seen := make(map[domain.InternedString]struct{})
	for _, t := range schedule {
		for _, res := range t.Resources {
			seen[res] = struct{}{}
		}
	}
	return len(seen)
}

func (r *Renderer) renderTable(
	w io.Writer,
	schedule []domain.ScheduledTask,
	cal *calendar.Calendar,
) error {
	nameWidth := len("Task")
	resWidth := len("Resources")
	for _, t := range schedule {
		nameWidth = max(nameWidth, len(t.Name.String()))
		resWidth = max(resWidth, len(joinNames(t.Resources)))
	}

	rowFormat := fmt.Sprintf("%%-%ds  %%-10s  %%-10s  %%4s  %%-%ds\n", nameWidth, resWidth)

	if _, err := fmt.Fprintf(w, "\n"+rowFormat, "Task", "Start", "End", "Days", "Resources"); err != nil {
		return err
	}
	for _, t := range schedule {
		_, err := fmt.Fprintf(w, rowFormat,
			t.Name.String(),
			t.Start.Format(calendar.DayFormat),
			t.End.Format(calendar.DayFormat),
			fmt.Sprintf("%d", cal.WorkingDaysBetween(t.Start, t.End)),
			joinNames(t.Resources),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// renderGrid draws one day column per calendar day from the project start
// through the latest task end, with a bar row per task.
func (r *Renderer) renderGrid(
	w io.Writer,
	schedule []domain.ScheduledTask,
	cal *calendar.Calendar,
	start time.Time,
) error {
	first, last := chartRange(schedule, start)

	nameWidth := 0
	for _, t := range schedule {
		nameWidth = max(nameWidth, len(t.Name.String()))
	}

	if _, err := io.WriteString(w, "\n"+r.monthRow(first, last, nameWidth)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.dayRow(first, last, nameWidth)); err != nil {
		return err
	}
	for _, t := range schedule {
		if _, err := io.WriteString(w, r.barRow(t, cal, first, last, nameWidth)); err != nil {
			return err
		}
	}
	return nil
}

// chartRange returns the inclusive date range the grid covers.
func chartRange(schedule []domain.ScheduledTask, start time.Time) (time.Time, time.Time) {
	first, last := start, start
	for _, t := range schedule {
		if t.Start.Before(first) {
			first = t.Start
		}
		if t.End.After(last) {
			last = t.End
		}
	}
	return first, last
}

// monthRow labels the first column and every first-of-month column.
func (r *Renderer) monthRow(first, last time.Time, nameWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameWidth+2))

	pending := ""
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cell := strings.Repeat(" ", cellWidth)
		if d.Equal(first) || d.Day() == 1 {
			pending = d.Format("Jan")
		}
		if pending != "" {
			n := min(len(pending), cellWidth)
			cell = pending[:n] + strings.Repeat(" ", cellWidth-n)
			pending = pending[n:]
		}
		b.WriteString(cell)
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

func (r *Renderer) dayRow(first, last time.Time, nameWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameWidth+2))
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		b.WriteString(fmt.Sprintf("%02d ", d.Day()))
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

func (r *Renderer) barRow(
	t domain.ScheduledTask,
	cal *calendar.Calendar,
	first, last time.Time,
	nameWidth int,
) string {
	color := barColor(t.Resources[0])

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s  ", nameWidth, t.Name.String()))
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		b.WriteString(r.cell(t, cal, d, color))
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

// cell paints one day column: a solid bar glyph for worked days, a shaded
// bar glyph for non-working days spanned by the task, faint shading for
// non-working days outside any bar, and blank space otherwise.
func (r *Renderer) cell(
	t domain.ScheduledTask,
	cal *calendar.Calendar,
	d time.Time,
	color termenv.Color,
) string {
	inBar := !d.Before(t.Start) && !d.After(t.End)
	working := cal.IsWorkingDay(d)

	switch {
	case inBar && working:
		return r.output.String(style.Block + style.Block).Foreground(color).String() + " "
	case inBar:
		return r.output.String(style.Shade + style.Shade).Foreground(color).String() + " "
	case !working:
		return r.output.String(style.Shade + style.Shade).Faint().String() + " "
	default:
		return strings.Repeat(" ", cellWidth)
	}
}

func joinNames(names []domain.InternedString) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, "/")
}
