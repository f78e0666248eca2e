package signing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

const testLicenseKey = "test_key"

func TestSignAt_Deterministic(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	// when
	first, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)
	second, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	// then
	assert.Equal(t, first, second)
}

func TestSignAt_FieldChangesChangeSignature(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	base, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	tests := map[string]struct {
		method    string
		path      string
		body      []byte
		timestamp int64
	}{
		"different method":    {method: "POST", path: "/test", timestamp: 1234567890},
		"different path":      {method: "GET", path: "/other", timestamp: 1234567890},
		"different timestamp": {method: "GET", path: "/test", timestamp: 1234567891},
		"different body":      {method: "GET", path: "/test", body: []byte(`{"a":1}`), timestamp: 1234567890},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			signature, err := signer.SignAt(tc.method, tc.path, tc.body, tc.timestamp)

			// then
			require.NoError(t, err)
			assert.NotEqual(t, base, signature)
		})
	}
}

func TestSignAt_MethodIsCaseInsensitive(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	// when
	lower, err := signer.SignAt("get", "/test", nil, 1234567890)
	require.NoError(t, err)
	upper, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	// then - canonicalization upper-cases the method
	assert.Equal(t, upper, lower)
}

func TestSign_UsesCurrentTimestamp(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	// when
	timestamp, signature, err := signer.Sign("GET", "/health", nil)

	// then
	require.NoError(t, err)
	assert.NotZero(t, timestamp)
	assert.NotEmpty(t, signature)
	assert.True(t, signer.Verify("GET", "/health", nil, timestamp, signature))
}

func TestVerify_RoundTrip(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	body := []byte(`{"logs":["entry"],"adapter":"aws"}`)
	signature, err := signer.SignAt("POST", "/v1/shadow/replay", body, 1234567890)
	require.NoError(t, err)

	// when / then
	assert.True(t, signer.Verify("POST", "/v1/shadow/replay", body, 1234567890, signature))
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	signature, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	// when - flip one byte of the valid signature
	tampered := []byte(signature)
	tampered[0] ^= 0x01

	// then
	assert.False(t, signer.Verify("GET", "/test", nil, 1234567890, string(tampered)))
}

func TestVerify_RejectsMalformedSignature(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	tests := map[string]string{
		"not base64":   "!!! not base64 !!!",
		"empty":        "",
		"wrong length": "c2hvcnQ=",
	}

	for name, signature := range tests {
		t.Run(name, func(t *testing.T) {
			// when / then - uniformly false, never a fault
			assert.False(t, signer.Verify("GET", "/test", nil, 1234567890, signature))
		})
	}
}

func TestVerify_FailsUnderDifferentCredential(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)
	other, err := signing.NewRequestSigner("another_key")
	require.NoError(t, err)

	signature, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	// when / then
	assert.False(t, other.Verify("GET", "/test", nil, 1234567890, signature))
}

func TestNewRequestSigner_RejectsEmptyLicenseKey(t *testing.T) {
	// when
	signer, err := signing.NewRequestSigner("")

	// then
	require.ErrorIs(t, err, signing.ErrEmptyLicenseKey)
	assert.Nil(t, signer)
}

func TestDestroy_SignerFailsFast(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	signature, err := signer.SignAt("GET", "/test", nil, 1234567890)
	require.NoError(t, err)

	// when
	signer.Destroy()

	// then
	assert.True(t, signer.Destroyed())

	_, err = signer.SignAt("GET", "/test", nil, 1234567890)
	assert.ErrorIs(t, err, signing.ErrSignerDestroyed)

	_, _, err = signer.Sign("GET", "/test", nil)
	assert.ErrorIs(t, err, signing.ErrSignerDestroyed)

	assert.False(t, signer.Verify("GET", "/test", nil, 1234567890, signature))
}

func TestDestroy_SignerIsIdempotent(t *testing.T) {
	// given
	signer, err := signing.NewRequestSigner(testLicenseKey)
	require.NoError(t, err)

	// when
	signer.Destroy()
	signer.Destroy()

	// then
	assert.True(t, signer.Destroyed())
}
