package logging

import (
	"log/slog"
	"time"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
	DurationKey  = "duration_ms"
)

// Child returns a new logger with the given component name added to the logger attrs.
func Child(logger *slog.Logger, component string) *slog.Logger {
	return DefaultIfNil(logger).With(
		slog.String(ComponentKey, component),
	)
}

func Error(err error) slog.Attr {
	return slog.String(ErrorKey, err.Error())
}

// Duration renders an elapsed time as whole milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Int64(DurationKey, d.Milliseconds())
}

// DefaultIfNil returns the default logger if the given logger is nil.
func DefaultIfNil(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
