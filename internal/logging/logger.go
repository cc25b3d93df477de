// Package logging provides a logging abstraction layer that decouples the
// application from specific logging frameworks. This allows for easier testing
// and flexibility in choosing logging implementations.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for structured logging throughout the application.
// Implementations should provide structured logging with support for fields and error context.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
// Fields provide context to log messages without cluttering the message text.
type Field struct {
	Key   string
	Value interface{}
}

var (
	globalMu sync.RWMutex
	global   Logger = NewLogrusAdapter("info", "text")
)

// GetLogger returns the process-wide default logger. Packages capture it in a
// package-level variable and allow overriding through their own SetLogger.
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// SetLogger replaces the process-wide default logger.
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	global = logger
}

// SetAllLogLevels sets the level on the shared logrus instance and rebuilds
// the default logger at that level. Loggers already captured by packages keep
// logging through logrus, so the standard-logger level change reaches them too.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	adapter := logrus.New()
	adapter.SetLevel(level)
	adapter.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	SetLogger(NewLogrusAdapterFromLogger(adapter))
}
