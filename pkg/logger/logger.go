package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus to provide structured, component-scoped logging.
type Logger struct {
	entry *logrus.Entry
}

// Init configures the global logrus settings. Output is JSON so the logs can
// be shipped to a collector without further parsing.
func Init(level logrus.Level) {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}

// New creates a Logger scoped to a component of the service.
func New(component string) *Logger {
	return &Logger{
		entry: logrus.WithField("component", component),
	}
}

// WithError attaches an error to the next log entry.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err)}
}

// WithField attaches a single key/value pair to the next log entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithPayload attaches business data to the next log entry.
func (l *Logger) WithPayload(payload map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithField("payload", payload)}
}

// Info records an info level log entry.
func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

// Warn records a warning level log entry.
func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

// Error records an error level log entry.
func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

// Debug records a debug level log entry.
func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

// Fatal records a fatal log entry and terminates the process.
func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
