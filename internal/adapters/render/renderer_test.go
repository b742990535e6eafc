package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/adapters/render"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/gantt/internal/engine/scheduler"
)

func scheduleFixture(t *testing.T) ([]domain.ScheduledTask, *calendar.Calendar, time.Time) {
	t.Helper()

	g := domain.NewGraph()
	for _, task := range []*domain.Task{
		{
			Name:      domain.NewInternedString("design"),
			Duration:  6,
			Resources: domain.NewInternedStrings([]string{"P1"}),
		},
		{
			Name:      domain.NewInternedString("build"),
			Duration:  3,
			Resources: domain.NewInternedStrings([]string{"P1"}),
		},
		{
			Name:         domain.NewInternedString("test"),
			Duration:     12,
			Resources:    domain.NewInternedStrings([]string{"P2"}),
			Dependencies: domain.NewInternedStrings([]string{"design"}),
		},
	} {
		require.NoError(t, g.AddTask(task))
	}

	cal := calendar.New()
	start := calendar.Date(2024, time.January, 1)

	schedule, err := scheduler.Schedule(g, cal, start)
	require.NoError(t, err)
	return schedule, cal, start
}

func TestRenderer_Render_Golden(t *testing.T) {
	schedule, cal, start := scheduleFixture(t)

	var buf bytes.Buffer
	r := render.NewRendererWithProfile(termenv.Ascii)
	require.NoError(t, r.Render(&buf, schedule, cal, start))

	g := goldie.New(t)
	g.Assert(t, "basic_chart", buf.Bytes())
}

func TestRenderer_Render_EmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewRendererWithProfile(termenv.Ascii)

	err := r.Render(&buf, nil, calendar.New(), calendar.Date(2024, time.January, 1))
	require.NoError(t, err)

	assert.Equal(t, "Chart starts 2024-01-01, 0 tasks, 0 resources\n", buf.String())
}

func TestRenderer_Render_CountsDistinctResources(t *testing.T) {
	schedule, cal, start := scheduleFixture(t)

	var buf bytes.Buffer
	r := render.NewRendererWithProfile(termenv.Ascii)
	require.NoError(t, r.Render(&buf, schedule, cal, start))

	// P1 appears on two tasks but counts once.
	assert.Contains(t, buf.String(), "3 tasks, 2 resources")
}

func TestRenderer_Render_ColoredOutputDiffersFromAscii(t *testing.T) {
	schedule, cal, start := scheduleFixture(t)

	var plain, colored bytes.Buffer
	require.NoError(t, render.NewRendererWithProfile(termenv.Ascii).Render(&plain, schedule, cal, start))
	require.NoError(t, render.NewRendererWithProfile(termenv.TrueColor).Render(&colored, schedule, cal, start))

	assert.NotEqual(t, plain.String(), colored.String())
	assert.True(t, strings.Contains(colored.String(), "\x1b["), "expected ANSI sequences")
}
