// Package log provides leveled, structured logging for huffcode.
//
// Messages are human-readable, one per line:
//
//	INFO encoded symbols=18 bits=59
package log

import (
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes messages at or above lvl
// to the given writer.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl})}
}

// With builds a new logger that includes the given attributes
// in every message.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

// WithName builds a new logger with the provided name.
// Attributes logged with the returned logger are prefixed with the name.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{l.WithGroup(name)}
}
