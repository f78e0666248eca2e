package signing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

func TestDeriveSigningKey_Deterministic(t *testing.T) {
	// when
	first := signing.DeriveSigningKey("test_key")
	second := signing.DeriveSigningKey("test_key")

	// then
	assert.Equal(t, first, second)
}

func TestDeriveSigningKey_NeverEqualsCredential(t *testing.T) {
	// given - a credential that is exactly key-sized, the only case where
	// byte-for-byte equality is even possible
	credential := "0123456789abcdef0123456789abcdef"

	// when
	key := signing.DeriveSigningKey(credential)

	// then
	assert.Len(t, key, signing.KeySize)
	assert.NotEqual(t, []byte(credential), key[:])
}

func TestDeriveSigningKey_DifferentCredentialsDifferentKeys(t *testing.T) {
	// when
	first := signing.DeriveSigningKey("test_key")
	second := signing.DeriveSigningKey("test_key2")

	// then
	assert.NotEqual(t, first, second)
}
