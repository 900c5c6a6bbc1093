package logger

// NewNoop returns a Logger that discards everything. Used in tests.
func NewNoop() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(args ...any) {}

func (noopLogger) Info(args ...any) {}

func (noopLogger) Warn(args ...any) {}

func (noopLogger) Error(args ...any) {}

func (n noopLogger) WithField(string, any) Logger { return n }

func (n noopLogger) WithFields(Fields) Logger { return n }

func (n noopLogger) WithError(error) Logger { return n }
