package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements Logger on a logrus.Entry, so fixed fields
// (component, run id) travel with every message.
type LogrusLogger struct {
	entry *logrus.Entry
	level LogLevel
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrusLogger wraps an existing logrus.Logger.
func NewLogrusLogger(logger *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{entry: logrus.NewEntry(logger), level: fromLogrus(logger.GetLevel())}
}

// NewLogrus creates a text-formatted logrus logger writing to out.
func NewLogrus(out io.Writer, level LogLevel) *LogrusLogger {
	lg := logrus.New()
	lg.SetOutput(out)
	lg.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l := NewLogrusLogger(lg)
	l.SetLevel(level)

	return l
}

// WithFields returns a logger that adds fields to every message.
func (l *LogrusLogger) WithFields(fields map[string]any) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields)), level: l.level}
}

// Debug logs debug messages
func (l *LogrusLogger) Debug(format string, v ...any) {
	if l.level <= LogLevelDebug {
		l.entry.Debugf(format, v...)
	}
}

// Info logs informational messages
func (l *LogrusLogger) Info(format string, v ...any) {
	if l.level <= LogLevelInfo {
		l.entry.Infof(format, v...)
	}
}

// Warn logs warning messages
func (l *LogrusLogger) Warn(format string, v ...any) {
	if l.level <= LogLevelWarn {
		l.entry.Warnf(format, v...)
	}
}

// Error logs error messages
func (l *LogrusLogger) Error(format string, v ...any) {
	if l.level <= LogLevelError {
		l.entry.Errorf(format, v...)
	}
}

// SetLevel sets the log level on both this wrapper and the underlying logger.
func (l *LogrusLogger) SetLevel(level LogLevel) {
	l.level = level
	l.entry.Logger.SetLevel(toLogrus(level))
}

// GetLevel returns the current log level
func (l *LogrusLogger) GetLevel() LogLevel {
	return l.level
}

func toLogrus(level LogLevel) logrus.Level {
	switch level {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelNone:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

func fromLogrus(level logrus.Level) LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return LogLevelDebug
	case level == logrus.InfoLevel:
		return LogLevelInfo
	case level == logrus.WarnLevel:
		return LogLevelWarn
	case level == logrus.ErrorLevel:
		return LogLevelError
	default:
		return LogLevelNone
	}
}
