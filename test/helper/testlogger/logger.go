// Package testlogger provides a recording log.Logger for tests
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Level   string
	Message string
}

// TestLogger implements log.Logger and keeps every entry in memory
type TestLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{
		entries: make([]LogEntry, 0),
	}
}

func (l *TestLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{
		Level:   level,
		Message: strings.TrimSuffix(msg, "\n"),
	})
}

func (l *TestLogger) Debug(args ...any) { l.record("DEBUG", fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) {
	l.record("DEBUG", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Debugln(args ...any) { l.record("DEBUG", fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)    { l.record("INFO", fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any) {
	l.record("INFO", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Infoln(args ...any) { l.record("INFO", fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)   { l.record("WARN", fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any) {
	l.record("WARN", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Warnln(args ...any) { l.record("WARN", fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)  { l.record("ERROR", fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) {
	l.record("ERROR", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorln(args ...any) { l.record("ERROR", fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)   { l.record("FATAL", fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) {
	l.record("FATAL", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Fatalln(args ...any) { l.record("FATAL", fmt.Sprintln(args...)) }

// WithFields implements log.Logger; fields are not tracked
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	return l
}

// WithDefaultMessageTemplate implements log.Logger; the template is ignored
func (l *TestLogger) WithDefaultMessageTemplate(template string) log.Logger {
	return l
}

// Sync implements log.Logger
func (l *TestLogger) Sync() error {
	return nil
}

// GetEntries returns a copy of all log entries
func (l *TestLogger) GetEntries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// Messages returns the messages logged at level, oldest first
func (l *TestLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string

	for _, entry := range l.entries {
		if entry.Level == level {
			out = append(out, entry.Message)
		}
	}

	return out
}

// Clear clears all log entries
func (l *TestLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]LogEntry, 0)
}

// Count returns the number of log entries for the given level
func (l *TestLogger) Count(level string) int {
	return len(l.Messages(level))
}

// Contains returns true if some entry at level contains all the given substrings
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	for _, msg := range l.Messages(level) {
		allFound := true

		for _, s := range substrings {
			if !strings.Contains(msg, s) {
				allFound = false
				break
			}
		}

		if allFound {
			return true
		}
	}

	return false
}

// ContainsAny returns true if any entry, at any level, contains s
func (l *TestLogger) ContainsAny(s string) bool {
	for _, entry := range l.GetEntries() {
		if strings.Contains(entry.Message, s) {
			return true
		}
	}

	return false
}
