// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Maps the core Logger interface onto leveled logrus entries

package structured

import (
	"io"

	"github.com/sirupsen/logrus"
)

// StructuredLogger implements the Logger interface using logrus.
type StructuredLogger struct {
	log *logrus.Logger
}

// NewStructuredLogger creates a logger at info level writing to stderr.
func NewStructuredLogger() *StructuredLogger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	return &StructuredLogger{log: log}
}

// NewStructuredLoggerWithLevel creates a logger at the given level.
func NewStructuredLoggerWithLevel(level logrus.Level) *StructuredLogger {
	log := logrus.New()
	log.SetLevel(level)
	return &StructuredLogger{log: log}
}

// SetOutput redirects log output, mainly for tests.
func (l *StructuredLogger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StructuredLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
