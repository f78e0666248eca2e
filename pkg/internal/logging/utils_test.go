package logging_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truthlinked/go-sdk/pkg/internal/logging"
)

func TestDefaultIfNil(t *testing.T) {
	// when:
	logger := logging.DefaultIfNil(nil)

	// then:
	require.NotNil(t, logger)
}

func TestChildHandlesNilLogger(t *testing.T) {
	// when:
	logger := logging.Child(nil, "test-component")

	// then:
	require.NotNil(t, logger)
}

func TestErrorAttr(t *testing.T) {
	// when:
	attr := logging.Error(errors.New("boom"))

	// then:
	assert.Equal(t, logging.ErrorKey, attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestDurationAttr(t *testing.T) {
	// when:
	attr := logging.Duration(1500 * time.Millisecond)

	// then:
	assert.Equal(t, logging.DurationKey, attr.Key)
	assert.Equal(t, int64(1500), attr.Value.Int64())
}
