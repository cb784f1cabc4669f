package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	logger logrus.Ext1FieldLogger
}

// NewLogrus creates a logrus-backed Logger writing to out at the given level.
// An unknown level falls back to "info".
func NewLogrus(level string, out io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableQuote:    true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &logrusLogger{logger: l}
}

func (l *logrusLogger) Debugf(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *logrusLogger) Infof(format string, args ...any) {
	l.logger.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...any) {
	l.logger.Warnf(format, args...)
}

func (l *logrusLogger) Errorf(format string, args ...any) {
	l.logger.Errorf(format, args...)
}

func (l *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{logger: l.logger.WithField(key, value)}
}
