// Package ports defines the interfaces between the engine/app core and the
// adapters that feed it tasks and present its output.
package ports

//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger is the logging interface used across the application.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error, formatting its cause chain.
	Error(err error)
}
