// ABOUTME: Logger implementation built on sirupsen/logrus
// ABOUTME: Provides structured logging with level support and JSON output

package logrus

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	logger *log.Logger
}

// New creates a logrus-backed logger writing JSON to stdout
func New() *Logger {
	l := log.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&log.JSONFormatter{})
	l.SetLevel(log.InfoLevel)

	return &Logger{logger: l}
}

// NewWithOutput creates a logger writing to w at the given level.
// Unknown level strings fall back to info.
func NewWithOutput(w io.Writer, level string) *Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{logger: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
