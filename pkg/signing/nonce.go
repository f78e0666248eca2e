package signing

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// nonceSize is the entropy of a generated nonce in bytes (256 bits).
const nonceSize = 32

// GenerateNonce returns a cryptographically secure random 256-bit value as
// 64 hex characters. Nonces are independent of any credential; they exist for
// caller-side replay and correlation protection.
func GenerateNonce() (string, error) {
	b := make([]byte, nonceSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashSHA256Hex returns the hex-encoded SHA-256 digest of data. Plain content
// hashing with no key involved; pure function of its input.
func HashSHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
