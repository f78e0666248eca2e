package defs_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truthlinked/go-sdk/pkg/defs"
)

func TestParseLogLevelStr(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected defs.LogLevel
	}{
		"lowercase": {input: "debug", expected: defs.LogLevelDebug},
		"uppercase": {input: "WARN", expected: defs.LogLevelWarn},
		"mixed":     {input: "Info", expected: defs.LogLevelInfo},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			level, err := defs.ParseLogLevelStr(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestParseLogLevelStr_Invalid(t *testing.T) {
	// when
	_, err := defs.ParseLogLevelStr("verbose")

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debug, info, warn, error")
}

func TestSLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, defs.LogLevelDebug.SLogLevel())
	assert.Equal(t, slog.LevelError, defs.LogLevelError.SLogLevel())
}

func TestParseHandlerTypeStr(t *testing.T) {
	// when
	handler, err := defs.ParseHandlerTypeStr("JSON")

	// then
	require.NoError(t, err)
	assert.Equal(t, defs.JSONHandler, handler)

	_, err = defs.ParseHandlerTypeStr("xml")
	require.Error(t, err)
}
