// Package config provides the chart configuration loader for gantt.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/gantt/internal/engine/calendar"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML chart file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds and reads the chart configuration, walking up from cwd.
// A missing chart file is not an error: the defaults apply.
func (l *Loader) Load(cwd string) (*domain.ChartConfig, error) {
	configPath, found := findChartfile(cwd)
	if !found {
		return defaults(), nil
	}

	// #nosec G304 -- configPath is discovered relative to the working directory
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var chartfile Chartfile
	if err := yaml.Unmarshal(raw, &chartfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg, err := resolve(&chartfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	cfg.Path = configPath

	if chartfile.WorkWeekends && len(chartfile.WeekendDays) > 0 {
		l.Logger.Warn("'weekend_days' has no effect when 'work_weekends' is set")
	}

	return cfg, nil
}

// findChartfile walks up from cwd looking for the chart file, the same way
// a build tool discovers its project file.
func findChartfile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ChartFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func defaults() *domain.ChartConfig {
	return &domain.ChartConfig{
		Start:       calendar.Day(time.Now()),
		WeekendDays: domain.DefaultWeekend,
	}
}

// resolve converts the raw chart file into chart settings, validating dates
// and weekday names.
func resolve(chartfile *Chartfile) (*domain.ChartConfig, error) {
	cfg := defaults()

	if chartfile.Start != "" {
		start, err := parseDay(chartfile.Start)
		if err != nil {
			return nil, zerr.With(err, "field", "start")
		}
		cfg.Start = start
	}

	if chartfile.WorkWeekends {
		cfg.WorkWeekends = true
		cfg.WeekendDays = nil
	} else if len(chartfile.WeekendDays) > 0 {
		days, err := parseWeekdays(chartfile.WeekendDays)
		if err != nil {
			return nil, err
		}
		cfg.WeekendDays = days
	}

	for _, h := range chartfile.Holidays {
		day, err := parseDay(h)
		if err != nil {
			return nil, zerr.With(err, "field", "holidays")
		}
		cfg.Holidays = append(cfg.Holidays, day)
	}

	cfg.SVGPath = chartfile.SVG
	return cfg, nil
}

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse(calendar.DayFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, zerr.With(domain.ErrInvalidDate, "value", s)
	}
	return calendar.Day(day), nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, zerr.With(domain.ErrInvalidWeekday, "value", name)
		}
		days = append(days, day)
	}
	return days, nil
}
