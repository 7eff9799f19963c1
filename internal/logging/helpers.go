package logging

import "log/slog"

// Pipeline components treat their logger as optional so tests can pass
// nil instead of building a handler. These helpers absorb the nil check.

// Debug emits a debug record when a logger is present.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info emits an info record when a logger is present.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn emits a warning record when a logger is present.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error emits an error record when a logger is present, appending the
// error as a structured attribute.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
