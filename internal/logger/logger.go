// Package logger provides application logging behind a small interface so
// packages do not depend on a concrete logging library.
package logger

// Logger is the application logging contract.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	WithField(key string, value any) Logger
}

// Nop returns a logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)          {}
func (nopLogger) Infof(string, ...any)           {}
func (nopLogger) Warnf(string, ...any)           {}
func (nopLogger) Errorf(string, ...any)          {}
func (n nopLogger) WithField(string, any) Logger { return n }
