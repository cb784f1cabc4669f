package client

// Logger is an optional package logger used for progress and non-fatal warnings.
type Logger interface {
	// Infof logs a formatted informational message.
	Infof(format string, args ...any)
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
