package ports

import (
	"io"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/calendar"
)

// Renderer writes a computed schedule in some presentation format.
// It decouples the scheduling result from its presentation, so the same
// schedule can drive the terminal view and the SVG file.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the chart for the given schedule. The schedule is in
	// input order; start is the project start date and cal supplies
	// non-working-day shading.
	Render(w io.Writer, schedule []domain.ScheduledTask, cal *calendar.Calendar, start time.Time) error
}
