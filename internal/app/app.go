// Package app implements the application layer for gantt.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/gantt/internal/adapters/render"
	"go.trai.ch/gantt/internal/adapters/svg"
	"go.trai.ch/gantt/internal/adapters/watcher"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/gantt/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.TaskSource
	logger       ports.Logger

	terminal   ports.Renderer
	svg        ports.Renderer
	stdout     io.Writer
	newWatcher func() (ports.Watcher, error)
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, source ports.TaskSource, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		source:       source,
		logger:       log,
		terminal:     render.NewRenderer(),
		svg:          svg.NewRenderer(),
		stdout:       os.Stdout,
		newWatcher: func() (ports.Watcher, error) {
			return watcher.NewWatcher()
		},
	}
}

// WithStdout redirects the terminal chart output.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithRenderers replaces the terminal and SVG renderers.
// This is primarily used for testing.
func (a *App) WithRenderers(terminal, svgRenderer ports.Renderer) *App {
	a.terminal = terminal
	a.svg = svgRenderer
	return a
}

// WithWatcherFactory replaces the watcher constructor.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(factory func() (ports.Watcher, error)) *App {
	a.newWatcher = factory
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// TaskList is the path of the CSV task list to schedule.
	TaskList string
	// SVG overrides the SVG output path from the chart file.
	SVG string
	// Start overrides the project start date, in YYYY-MM-DD form.
	Start string
	// WorkWeekends schedules straight through weekends.
	WorkWeekends bool
	// Watch re-renders the chart whenever an input file changes.
	Watch bool
	// NoColor disables styled terminal output.
	NoColor bool
}

// Run schedules the task list and renders the chart.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.TaskList == "" {
		return domain.ErrNoTaskList
	}

	if opts.NoColor {
		a.terminal = render.NewRendererWithProfile(termenv.Ascii)
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	if !opts.Watch {
		_, err := a.renderOnce(ctx, cfg, opts.TaskList)
		return err
	}

	return a.watch(ctx, cfg, opts)
}

// loadConfig loads the chart configuration and applies the command line
// overrides on top of it.
func (a *App) loadConfig(opts RunOptions) (*domain.ChartConfig, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load chart configuration")
	}

	if opts.Start != "" {
		start, err := time.Parse(calendar.DayFormat, opts.Start)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidDate, "value", opts.Start)
		}
		cfg.Start = calendar.Day(start)
	}
	if opts.WorkWeekends {
		cfg.WorkWeekends = true
		cfg.WeekendDays = nil
	}
	if opts.SVG != "" {
		cfg.SVGPath = opts.SVG
	}

	return cfg, nil
}

// renderOnce runs one full schedule-and-render pass and returns the
// schedule fingerprint.
func (a *App) renderOnce(ctx context.Context, cfg *domain.ChartConfig, taskList string) (uint64, error) {
	graph, err := a.source.Load(taskList)
	if err != nil {
		return 0, err
	}

	cal := buildCalendar(cfg)

	schedule, err := scheduler.Schedule(graph, cal, cfg.Start)
	if err != nil {
		return 0, err
	}

	// The terminal chart and the SVG file are independent views of the
	// same schedule, so they render concurrently.
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.terminal.Render(a.stdout, schedule, cal, cfg.Start); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
		return nil
	})

	if cfg.SVGPath != "" {
		g.Go(func() error {
			return a.renderSVG(cfg.SVGPath, schedule, cal, cfg.Start)
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return scheduler.Fingerprint(schedule), nil
}

func (a *App) renderSVG(path string, schedule []domain.ScheduledTask, cal *calendar.Calendar, start time.Time) error {
	f, err := os.Create(path) // #nosec G304 -- path comes from the user's own config
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}

	if err := a.svg.Render(f, schedule, cal, start); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	return f.Close()
}

// watch renders once, then re-renders whenever the task list or the chart
// file changes. Render failures are logged rather than fatal so a half-saved
// edit does not kill the session.
func (a *App) watch(ctx context.Context, cfg *domain.ChartConfig, opts RunOptions) error {
	fingerprint, err := a.renderOnce(ctx, cfg, opts.TaskList)
	if err != nil {
		a.logger.Error(err)
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		_ = w.Stop()
	}()

	paths := []string{opts.TaskList}
	if cfg.Path != "" {
		paths = append(paths, cfg.Path)
	}
	if err := w.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to watch input files")
	}

	a.logger.Info("watching for changes, press ctrl+c to stop")

	for path := range w.Events() {
		a.logger.Info("change detected: " + path)

		// The chart file may itself have changed, reload it.
		cfg, err = a.loadConfig(opts)
		if err != nil {
			a.logger.Error(err)
			continue
		}

		next, err := a.renderOnce(ctx, cfg, opts.TaskList)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if next == fingerprint {
			a.logger.Info("schedule unchanged")
		}
		fingerprint = next
	}

	// The event stream ends when the context is cancelled, which is the
	// normal way to leave watch mode.
	return nil
}

// buildCalendar translates the chart settings into a working calendar.
func buildCalendar(cfg *domain.ChartConfig) *calendar.Calendar {
	cal := calendar.New()
	if cfg.WorkWeekends {
		cal.SetWeekend()
	} else if len(cfg.WeekendDays) > 0 {
		cal.SetWeekend(cfg.WeekendDays...)
	}
	for _, h := range cfg.Holidays {
		cal.AddHoliday(h)
	}
	return cal
}
