// Package logger provides the logging interface shared by statboard packages.
// The poller, settings manager and CLI log through it so tests can swap in a
// BufferLogger and the TUI can route output away from the terminal.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "STATBOARD_DEBUG"

// Logger is the printf-style sink every statboard package logs through.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// DebugEnabled reports whether STATBOARD_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// envLogger prints through the log package, which the monitor command
// points at a file while the dashboard owns the terminal. Debug lines are
// dropped unless DebugEnabled.
type envLogger struct {
	prefix string
}

// NewEnvLogger tags every line with prefix, such as "[poll]" for the
// poller or "[list]" for the list command.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...any) {
	if DebugEnabled() {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...any) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...any) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

type noopLogger struct{}

// Noop discards everything. Clients built without WithLogger use it.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...any) {}
func (l *noopLogger) Info(format string, args ...any)  {}
func (l *noopLogger) Warn(format string, args ...any)  {}
func (l *noopLogger) Error(format string, args ...any) {}

// LogMessage is one line held by a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger keeps lines in memory for assertions. Bubble Tea commands
// log from their own goroutines, so read through Snapshot, or read
// Messages directly once those commands have returned.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...any) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...any)  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...any)  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...any) { l.add("error", format, args...) }

// Snapshot copies the lines held so far.
func (l *BufferLogger) Snapshot() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.Messages))
	copy(out, l.Messages)
	return out
}

// HasLevel reports whether anything was logged at level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Snapshot() {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether a line at level includes substr. Pass "" to
// search every level.
func (l *BufferLogger) Contains(level, substr string) bool {
	for _, m := range l.Snapshot() {
		if (level == "" || m.Level == level) && strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear drops the held lines.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default is the logger for code that has none injected, such as the
// command error handler.
func Default() Logger {
	return defaultLogger
}

// SetDefault swaps the logger Default returns.
func SetDefault(l Logger) {
	defaultLogger = l
}
