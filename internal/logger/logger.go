// Package logger provides the diagnostics logging interface for fasam components.
// It is separate from the on-screen log panel: diagnostics go to stderr or a
// file, never to the dashboard itself.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// DebugEnv enables debug output from the env logger when set to any value.
const DebugEnv = "FASAM_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes tagged lines to a writer. Debug lines are only written
// when FASAM_DEBUG is set.
type envLogger struct {
	out *log.Logger
}

// NewEnvLogger creates a stderr logger that respects FASAM_DEBUG.
// The prefix is prepended to all log messages (e.g., "[config]").
func NewEnvLogger(prefix string) Logger {
	return NewWriterLogger(os.Stderr, prefix)
}

// NewWriterLogger is NewEnvLogger writing to w.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	if prefix != "" && !strings.HasSuffix(prefix, " ") {
		prefix += " "
	}
	return &envLogger{out: log.New(w, prefix, log.LstdFlags)}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		l.out.Printf("DEBUG: "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.out.Printf(format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.out.Printf("WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.out.Printf("ERROR: "+format, args...)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions. Safe for
// concurrent use.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record(DebugLevel, format, args)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record(InfoLevel, format, args)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record(WarnLevel, format, args)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record(ErrorLevel, format, args)
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether any message contains substr.
func (l *BufferLogger) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

// defaultLogger is the package-level default logger.
var defaultLogger = NewEnvLogger("fasam:")

// Default returns the default stderr logger. Commands that do not take over
// the terminal use it.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
