package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted by NewFileLogger.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Levels lists the accepted level strings in increasing severity.
var Levels = []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// defaultZapLevel is used when an unknown level string is provided.
const defaultZapLevel = zapcore.InfoLevel

// toZapLevel converts a textual level to a zapcore.Level.
func toZapLevel(level string) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// FileLogger writes diagnostics to a file through zap. The dashboard owns the
// terminal while it runs, so anything printed to stdout/stderr would corrupt
// the frame.
type FileLogger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewFileLogger opens (or creates) path in append mode and returns a logger
// that writes console-encoded lines at or above level.
func NewFileLogger(path, level string) (*FileLogger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(f)),
		zap.NewAtomicLevelAt(toZapLevel(level)),
	)

	return &FileLogger{sugar: zap.New(core).Sugar(), file: f}, nil
}

// With returns a child logger that attaches the key/value pairs to every line.
func (l *FileLogger) With(keysAndValues ...interface{}) *FileLogger {
	return &FileLogger{sugar: l.sugar.With(keysAndValues...), file: l.file}
}

func (l *FileLogger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *FileLogger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *FileLogger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *FileLogger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Close flushes buffered entries and closes the file. Children created with
// With share the file, so only the root logger should be closed.
func (l *FileLogger) Close() error {
	_ = l.sugar.Sync()
	return l.file.Close()
}
