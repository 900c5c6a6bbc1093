// Package logger provides the logging facade used across the app. It
// hides the concrete backend so packages depend on a small interface
// and tests can swap in a silent implementation.
package logger

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields map[string]any

// Logger is the minimal logging surface the download pipeline needs.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
}
