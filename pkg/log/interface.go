// Package log provides a structured logging interface for linsys solvers.
//
// The interface is slog-compatible so callers can plug in any backend; the
// package ships a zerolog implementation (the default) and a slog setup for
// command-line programs. Solvers only emit Debug-level traces of
// intermediate matrices, which never affect results.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.MethodKey, "gauss",
//	    log.SizeKey, 3,
//	)
//	logger.Debug("row interchange", log.RowKey, 0, log.PivotRowKey, 2)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. With returns a child logger whose
// fields are attached to every subsequent record.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. If the first field is an error it is
	// attached under ErrAttrKey and its stack trace (if any) is preserved.
	//
	//	logger.Error("solve failed", err, log.MethodKey, "lu")
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Solvers check it before formatting matrices for trace output.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
