package ports

import "go.trai.ch/gantt/internal/core/domain"

// ConfigLoader loads the chart configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the chart configuration starting from the given working
	// directory. When no config file exists, it returns the defaults
	// (start today, weekends off, no holidays) rather than an error.
	Load(cwd string) (*domain.ChartConfig, error)
}
