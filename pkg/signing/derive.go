package signing

import (
	"crypto/hmac"
	"crypto/sha256"
)

// KeySize is the length in bytes of a derived signing key.
const KeySize = sha256.Size

// signingDomainLabel is the fixed domain-separation label for key derivation.
// It is used as the HMAC key (with the credential as the message), so a future
// protocol version with a different label yields non-interchangeable keys even
// from the same credential. The label is never transmitted.
const signingDomainLabel = "truthlinked-request-signing-v1"

// DeriveSigningKey derives the per-credential signing key:
// HMAC-SHA256(key=signingDomainLabel, message=licenseKey).
// Deterministic and one-way with respect to the credential.
func DeriveSigningKey(licenseKey string) [KeySize]byte {
	mac := hmac.New(sha256.New, []byte(signingDomainLabel))
	mac.Write([]byte(licenseKey))

	var key [KeySize]byte
	copy(key[:], mac.Sum(nil))
	return key
}
