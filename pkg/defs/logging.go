// Package defs holds configuration enums shared by the CLI and examples.
package defs

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LogLevel represents different log levels which can be configured.
type LogLevel string

// Supported log levels (based on slog).
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevelStr parses a string into a LogLevel (case-insensitive).
func ParseLogLevelStr(level string) (LogLevel, error) {
	return parseEnumCaseInsensitive(level, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)
}

// SLogLevel maps the level to its slog equivalent.
func (l LogLevel) SLogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogHandler represents different log handler types which can be configured.
type LogHandler string

// Supported handler types (based on slog).
const (
	JSONHandler LogHandler = "json"
	TextHandler LogHandler = "text"
)

// ParseHandlerTypeStr parses a string into a LogHandler (case-insensitive).
func ParseHandlerTypeStr(handlerType string) (LogHandler, error) {
	return parseEnumCaseInsensitive(handlerType, JSONHandler, TextHandler)
}

// NewLogger builds a slog logger from the configured level and handler type.
func NewLogger(w io.Writer, level LogLevel, handlerType LogHandler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SLogLevel()}
	if handlerType == JSONHandler {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseEnumCaseInsensitive[E ~string](value string, allowed ...E) (E, error) {
	for _, candidate := range allowed {
		if strings.EqualFold(value, string(candidate)) {
			return candidate, nil
		}
	}

	var zero E
	names := make([]string, 0, len(allowed))
	for _, candidate := range allowed {
		names = append(names, string(candidate))
	}
	return zero, fmt.Errorf("invalid value %q, expected one of: %s", value, strings.Join(names, ", "))
}
