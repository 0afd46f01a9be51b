package logger

// Level represents the minimum severity of log entries that will be emitted.
type Level string

const (
	// Debug enables all log output including verbose diagnostics.
	Debug Level = "debug"

	// Info enables informational messages and above. This is the default.
	Info Level = "info"

	// Warning enables warnings and errors only.
	Warning Level = "warning"

	// Error enables error output only.
	Error Level = "error"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level to emit
	// Default: Info
	Level Level

	// ServiceName is added as a "service" field to every log entry
	ServiceName string

	// EnableTracing controls whether trace and span IDs are extracted
	// from the context passed to logging methods and attached to entries
	EnableTracing bool
}
