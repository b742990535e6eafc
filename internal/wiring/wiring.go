// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gantt/internal/adapters/config"
	_ "go.trai.ch/gantt/internal/adapters/logger"
	_ "go.trai.ch/gantt/internal/adapters/tasklist"
	// Register app nodes.
	_ "go.trai.ch/gantt/internal/app"
)
