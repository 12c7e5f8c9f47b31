// Package logger provides the leveled logging interface used by cb components.
// Packages log through the Logger interface so tests can capture messages
// without touching the process-wide log output.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "CB_DEBUG"

// Logger defines the interface for diagnostic output. User-facing warnings
// go through ui.RenderWarning instead, so the only level is Debug.
type Logger interface {
	Debug(format string, args ...interface{})
}

// verbose is flipped by the --verbose flag.
var verbose atomic.Bool

// SetVerbose enables debug output regardless of CB_DEBUG.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// DebugEnabled reports whether debug messages are printed.
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv(DebugEnv) != ""
}

// envLogger logs through the standard log package (stderr by default).
// Debug messages are only printed when CB_DEBUG is set or --verbose was given.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects CB_DEBUG and --verbose.
// The prefix is prepended to all log messages (e.g., "[clipboard]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf(l.prefix+" "+format, args...)
	}
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains returns true if any captured message at the given level contains substr.
func (l *BufferLogger) Contains(level, substr string) bool {
	for _, m := range l.Messages {
		if m.Level == level && strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
