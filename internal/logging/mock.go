package logging

import (
	"fmt"
	"sync"
)

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Loggers derived through
// WithError/WithField/WithFields record into the same root capture store, so
// tests can assert on the MockLogger they constructed.
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields, nil)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields, nil)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields, nil)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields, nil)
}

// Fatal logs a fatal-level message. The mock does not exit.
func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("FATAL", msg, fields, nil)
}

// Fatalf logs a formatted fatal-level message. The mock does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil, nil)
}

// WithError returns a derived logger with an error attached.
func (m *MockLogger) WithError(err error) Logger {
	return &mockContext{root: m, err: err}
}

// WithField returns a derived logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &mockContext{root: m, fields: fields}
}

// GetEntries returns all captured log entries.
func (m *MockLogger) GetEntries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]LogEntry, len(m.Entries))
	copy(entries, m.Entries)
	return entries
}

// GetEntriesByLevel returns all log entries of a specific level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear removes all captured log entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = nil
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// mockContext carries fields and an error accumulated through WithX calls,
// recording into the root MockLogger.
type mockContext struct {
	root   *MockLogger
	fields []Field
	err    error
}

func (c *mockContext) log(level, msg string, fields []Field) {
	all := make([]Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	c.root.record(level, msg, all, c.err)
}

func (c *mockContext) Debug(msg string, fields ...Field) { c.log("DEBUG", msg, fields) }
func (c *mockContext) Info(msg string, fields ...Field)  { c.log("INFO", msg, fields) }
func (c *mockContext) Warn(msg string, fields ...Field)  { c.log("WARN", msg, fields) }
func (c *mockContext) Error(msg string, fields ...Field) { c.log("ERROR", msg, fields) }
func (c *mockContext) Fatal(msg string, fields ...Field) { c.log("FATAL", msg, fields) }

func (c *mockContext) Fatalf(msg string, args ...interface{}) {
	c.log("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (c *mockContext) WithError(err error) Logger {
	return &mockContext{root: c.root, fields: c.fields, err: err}
}

func (c *mockContext) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *mockContext) WithFields(fields ...Field) Logger {
	all := make([]Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	return &mockContext{root: c.root, fields: all, err: c.err}
}
