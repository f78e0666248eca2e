package signing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

func TestConstantTimeEqual(t *testing.T) {
	tests := map[string]struct {
		a        []byte
		b        []byte
		expected bool
	}{
		"equal slices":             {a: []byte("signature"), b: []byte("signature"), expected: true},
		"both empty":               {a: []byte{}, b: []byte{}, expected: true},
		"both nil":                 {a: nil, b: nil, expected: true},
		"nil vs empty":             {a: nil, b: []byte{}, expected: true},
		"different content":        {a: []byte("signature"), b: []byte("signaturf"), expected: false},
		"different length":         {a: []byte("signature"), b: []byte("signatur"), expected: false},
		"prefix of the other":      {a: []byte("abc"), b: []byte("abcdef"), expected: false},
		"same length all differ":   {a: []byte("aaaa"), b: []byte("bbbb"), expected: false},
		"differs only in last byte": {a: []byte{1, 2, 3, 4}, b: []byte{1, 2, 3, 5}, expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// when / then - including symmetry
			assert.Equal(t, tc.expected, signing.ConstantTimeEqual(tc.a, tc.b))
			assert.Equal(t, tc.expected, signing.ConstantTimeEqual(tc.b, tc.a))
		})
	}
}

func TestConstantTimeEqual_Reflexive(t *testing.T) {
	// given
	value := []byte("some-signature-bytes")

	// when / then
	assert.True(t, signing.ConstantTimeEqual(value, value))
}
