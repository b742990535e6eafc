package svg

import (
	"io"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/gantt/internal/ui/style"
)

// Chart geometry in pixels.
const (
	dayWidth     = 22
	rowHeight    = 26
	headerHeight = 40
	rightMargin  = 160
	barInset     = 4
)

const (
	gridColor    = "#d4d4d8"
	weekendColor = "#ececef"
	labelColor   = "#2a2a33"
	mutedColor   = "#8a8a96"
	todayColor   = "#2563eb"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer writes the schedule as an SVG document.
type Renderer struct{}

// NewRenderer creates an SVG renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the SVG chart for the schedule.
func (r *Renderer) Render(
	w io.Writer,
	schedule []domain.ScheduledTask,
	cal *calendar.Calendar,
	start time.Time,
) error {
	start = calendar.Day(start)
	first, last := chartRange(schedule, start)

	days := int(last.Sub(first).Hours()/24) + 1
	width := days*dayWidth + rightMargin
	height := headerHeight + len(schedule)*rowHeight + rowHeight/2

	doc := newDocument(width, height)
	doc.rect(0, 0, float64(width), float64(height), `fill="#ffffff"`)

	drawCalendar(doc, cal, first, days, height)
	rows := drawBars(doc, schedule, first)
	drawDependencies(doc, schedule, rows)

	_, err := io.WriteString(w, doc.String())
	return err
}

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

// drawCalendar draws the weekend shading, the day gridlines and the month
// and day-number labels across the top.
func drawCalendar(doc *document, cal *calendar.Calendar, first time.Time, days, height int) {
	for i := range days {
		day := first.AddDate(0, 0, i)
		x := float64(i * dayWidth)

		if !cal.IsWorkingDay(day) {
			doc.rect(x, headerHeight, dayWidth, float64(height-headerHeight),
				`fill="`+weekendColor+`"`)
		}

		doc.line(x, headerHeight, x, float64(height), `stroke="`+gridColor+`"`)

		if i == 0 || day.Day() == 1 {
			doc.text(x+2, 14, `font-family="sans-serif" font-size="12" fill="`+labelColor+`"`,
				day.Format("Jan 2006"))
		}
		doc.text(x+dayWidth/2, 32,
			`font-family="sans-serif" font-size="10" text-anchor="middle" fill="`+mutedColor+`"`,
			day.Format("02"))
	}

	doc.line(0, headerHeight, float64(days*dayWidth), headerHeight, `stroke="`+labelColor+`"`)

	// Mark today when it falls inside the chart range.
	today := calendar.Day(time.Now())
	last := first.AddDate(0, 0, days-1)
	if !today.Before(first) && !today.After(last) {
		x := dayX(first, today) + dayWidth/2
		doc.line(x, headerHeight, x, float64(height), `stroke="`+todayColor+`" stroke-width="2"`)
	}
}

// barGeometry records where a task's bar was drawn so dependency connectors
// can be routed between rows.
type barGeometry struct {
	startX float64
	endX   float64
	topY   float64
	midY   float64
}

func drawBars(doc *document, schedule []domain.ScheduledTask, first time.Time) map[domain.InternedString]barGeometry {
	rows := make(map[domain.InternedString]barGeometry, len(schedule))

	for i, t := range schedule {
		y := float64(headerHeight + i*rowHeight)
		startX := dayX(first, t.Start)
		endX := dayX(first, t.End) + dayWidth

		doc.rect(startX, y+barInset, endX-startX, rowHeight-2*barInset,
			`rx="3" fill="`+barColor(t.Resources[0])+`"`)
		doc.text(endX+6, y+rowHeight/2+4,
			`font-family="sans-serif" font-size="12" fill="`+labelColor+`"`,
			t.Name.String())

		rows[t.Name] = barGeometry{
			startX: startX,
			endX:   endX,
			topY:   y + barInset,
			midY:   y + rowHeight/2,
		}
	}
	return rows
}

// drawDependencies routes an elbow from the end of each dependency bar to
// the top of the dependent bar, ending in a dot.
func drawDependencies(doc *document, schedule []domain.ScheduledTask, rows map[domain.InternedString]barGeometry) {
	const stroke = `stroke="` + mutedColor + `" stroke-width="1.5"`

	for _, t := range schedule {
		to := rows[t.Name]
		for _, dep := range t.Dependencies {
			from, ok := rows[dep]
			if !ok {
				continue
			}
			elbowX := to.startX + dayWidth/2
			doc.line(from.endX, from.midY, elbowX, from.midY, stroke)
			doc.line(elbowX, from.midY, elbowX, to.topY, stroke)
			doc.circle(elbowX, to.topY, 3, `fill="`+mutedColor+`"`)
		}
	}
}

func dayX(first, day time.Time) float64 {
	return float64(int(day.Sub(first).Hours()/24) * dayWidth)
}

// barColor picks a stable palette color for a resource by hashing its name.
func barColor(resource domain.InternedString) string {
	idx := xxhash.Sum64String(resource.String()) % uint64(len(style.BarPalette))
	return string(style.BarPalette[idx])
}
