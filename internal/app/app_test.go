package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/app"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/core/ports/mocks"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader   *mocks.MockConfigLoader
	source   *mocks.MockTaskSource
	logger   *mocks.MockLogger
	terminal *mocks.MockRenderer
	svg      *mocks.MockRenderer
}

func setupAppTest(t *testing.T) (*app.App, appTestMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		source:   mocks.NewMockTaskSource(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		terminal: mocks.NewMockRenderer(ctrl),
		svg:      mocks.NewMockRenderer(ctrl),
	}

	out := &bytes.Buffer{}
	a := app.New(m.loader, m.source, m.logger).
		WithStdout(out).
		WithRenderers(m.terminal, m.svg)
	return a, m, out
}

func testGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(&domain.Task{
		Name:      domain.NewInternedString("design"),
		Duration:  2,
		Resources: domain.NewInternedStrings([]string{"P1"}),
	}))
	return g
}

func testConfig() *domain.ChartConfig {
	return &domain.ChartConfig{
		Start:       calendar.Date(2024, time.January, 1),
		WeekendDays: domain.DefaultWeekend,
	}
}

func TestApp_Run_NoTaskList(t *testing.T) {
	a, _, _ := setupAppTest(t)

	err := a.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTaskList))
}

func TestApp_Run_RendersTerminalChart(t *testing.T) {
	a, m, out := setupAppTest(t)

	m.loader.EXPECT().Load(".").Return(testConfig(), nil)
	m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil)
	m.terminal.EXPECT().
		Render(out, gomock.Any(), gomock.Any(), calendar.Date(2024, time.January, 1)).
		DoAndReturn(func(_ io.Writer, schedule []domain.ScheduledTask, _ *calendar.Calendar, _ time.Time) error {
			require.Len(t, schedule, 1)
			assert.Equal(t, "design", schedule[0].Name.String())
			assert.Equal(t, calendar.Date(2024, time.January, 2), schedule[0].End)
			return nil
		})

	err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv"})
	require.NoError(t, err)
}

func TestApp_Run_WritesSVGFile(t *testing.T) {
	a, m, _ := setupAppTest(t)

	svgPath := filepath.Join(t.TempDir(), "chart.svg")

	m.loader.EXPECT().Load(".").Return(testConfig(), nil)
	m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil)
	m.terminal.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.svg.EXPECT().
		Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(w io.Writer, _ []domain.ScheduledTask, _ *calendar.Calendar, _ time.Time) error {
			_, err := io.WriteString(w, "<svg/>")
			return err
		})

	err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", SVG: svgPath})
	require.NoError(t, err)

	content, err := os.ReadFile(svgPath) // #nosec G304
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(content))
}

func TestApp_Run_Overrides(t *testing.T) {
	t.Run("start override", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		m.loader.EXPECT().Load(".").Return(testConfig(), nil)
		m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil)
		m.terminal.EXPECT().
			Render(gomock.Any(), gomock.Any(), gomock.Any(), calendar.Date(2024, time.March, 4)).
			Return(nil)

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", Start: "2024-03-04"})
		require.NoError(t, err)
	})

	t.Run("invalid start override", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		m.loader.EXPECT().Load(".").Return(testConfig(), nil)

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", Start: "04.03.2024"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidDate))
	})

	t.Run("work weekends override", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		m.loader.EXPECT().Load(".").Return(testConfig(), nil)
		m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil)
		m.terminal.EXPECT().
			Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ io.Writer, _ []domain.ScheduledTask, cal *calendar.Calendar, _ time.Time) error {
				saturday := calendar.Date(2024, time.January, 6)
				assert.True(t, cal.IsWorkingDay(saturday))
				return nil
			})

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", WorkWeekends: true})
		require.NoError(t, err)
	})
}

func TestApp_Run_PropagatesErrors(t *testing.T) {
	t.Run("config load fails", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		loadErr := errors.New("disk on fire")
		m.loader.EXPECT().Load(".").Return(nil, loadErr)

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, loadErr))
	})

	t.Run("task list load fails", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		loadErr := errors.New("bad csv")
		m.loader.EXPECT().Load(".").Return(testConfig(), nil)
		m.source.EXPECT().Load("tasks.csv").Return(nil, loadErr)

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, loadErr))
	})

	t.Run("scheduling fails", func(t *testing.T) {
		a, m, _ := setupAppTest(t)

		g := domain.NewGraph()
		require.NoError(t, g.AddTask(&domain.Task{
			Name:      domain.NewInternedString("broken"),
			Duration:  0,
			Resources: domain.NewInternedStrings([]string{"P1"}),
		}))

		m.loader.EXPECT().Load(".").Return(testConfig(), nil)
		m.source.EXPECT().Load("tasks.csv").Return(g, nil)

		err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidDuration))
	})
}

// fakeWatcher feeds a scripted sequence of change events to the app.
type fakeWatcher struct {
	events  chan string
	started []string
	stopped bool
}

func (f *fakeWatcher) Start(_ context.Context, paths []string) error {
	f.started = paths
	return nil
}

func (f *fakeWatcher) Stop() error {
	f.stopped = true
	return nil
}

func (f *fakeWatcher) Events() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range f.events {
			if !yield(path) {
				return
			}
		}
	}
}

func TestApp_Run_WatchRerendersOnChange(t *testing.T) {
	a, m, _ := setupAppTest(t)

	fw := &fakeWatcher{events: make(chan string, 1)}
	a.WithWatcherFactory(func() (ports.Watcher, error) { return fw, nil })

	// Initial render plus one re-render after the change event.
	m.loader.EXPECT().Load(".").Return(testConfig(), nil).Times(2)
	m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil).Times(2)
	m.terminal.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	fw.events <- "/project/tasks.csv"
	close(fw.events)

	err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", Watch: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"tasks.csv"}, fw.started)
	assert.True(t, fw.stopped)
}

func TestApp_Run_WatchSurvivesRenderErrors(t *testing.T) {
	a, m, _ := setupAppTest(t)

	fw := &fakeWatcher{events: make(chan string, 1)}
	a.WithWatcherFactory(func() (ports.Watcher, error) { return fw, nil })

	loadErr := errors.New("half-saved file")

	m.loader.EXPECT().Load(".").Return(testConfig(), nil).Times(2)
	gomock.InOrder(
		// The initial pass fails to read the task list.
		m.source.EXPECT().Load("tasks.csv").Return(nil, loadErr),
		// The re-render after the change succeeds.
		m.source.EXPECT().Load("tasks.csv").Return(testGraph(t), nil),
	)
	m.terminal.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	m.logger.EXPECT().Error(gomock.Any()).Times(1)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	fw.events <- "/project/tasks.csv"
	close(fw.events)

	err := a.Run(context.Background(), app.RunOptions{TaskList: "tasks.csv", Watch: true})
	require.NoError(t, err)
}
