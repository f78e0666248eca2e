package signing_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

func TestGenerateNonce(t *testing.T) {
	// when
	first, err := signing.GenerateNonce()
	require.NoError(t, err)
	second, err := signing.GenerateNonce()
	require.NoError(t, err)

	// then - 256 bits as 64 hex characters, unique per call
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	_, err = hex.DecodeString(first)
	assert.NoError(t, err)
}

func TestHashSHA256Hex(t *testing.T) {
	// given - well-known SHA-256 vectors
	tests := map[string]struct {
		data     []byte
		expected string
	}{
		"empty input": {
			data:     nil,
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		"abc": {
			data:     []byte("abc"),
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// when / then
			assert.Equal(t, tc.expected, signing.HashSHA256Hex(tc.data))
		})
	}
}

func TestHashSHA256Hex_Deterministic(t *testing.T) {
	// given
	data := []byte(`{"logs":["entry"]}`)

	// when / then
	assert.Equal(t, signing.HashSHA256Hex(data), signing.HashSHA256Hex(data))
}
