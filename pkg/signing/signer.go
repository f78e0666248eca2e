// Package signing implements the request-authentication core of the
// Truthlinked SDK: per-credential signing key derivation, canonical request
// signatures, constant-time verification and secure credential lifecycle.
//
// The canonical signing message is UPPERCASE(method) + "\n" + path + "\n" +
// decimal(timestamp) + "\n" + body, where body is the caller's pre-serialized
// payload bytes (empty for bodyless requests). Signatures are standard base64
// of HMAC-SHA256 over that message.
//
// The signer binds a timestamp into every signature but does not enforce
// freshness or reject duplicates; that is the verifier's policy (see
// pkg/middleware/auth).
package signing

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrSignerDestroyed is returned by Sign and SignAt after Destroy. Signing
// with zeroed key material is a contract violation and fails fast rather than
// producing signatures under an all-zero key.
var ErrSignerDestroyed = errors.New("request signer has been destroyed")

// RequestSigner produces and verifies canonical per-request signatures with
// a signing key derived from a single credential. One signer per logical
// client session; not safe for a Destroy racing other calls on the same
// instance.
type RequestSigner struct {
	signingKey []byte
	destroyed  bool
}

// NewRequestSigner derives a signing key from the license key and returns a
// signer owning it. The credential itself is not retained.
func NewRequestSigner(licenseKey string) (*RequestSigner, error) {
	if licenseKey == "" {
		return nil, ErrEmptyLicenseKey
	}
	key := DeriveSigningKey(licenseKey)
	return &RequestSigner{signingKey: key[:]}, nil
}

// Sign signs a request using the current time in whole seconds since epoch
// and returns the timestamp together with the signature.
func (s *RequestSigner) Sign(method, path string, body []byte) (int64, string, error) {
	timestamp := time.Now().Unix()
	signature, err := s.SignAt(method, path, body, timestamp)
	if err != nil {
		return 0, "", err
	}
	return timestamp, signature, nil
}

// SignAt signs a request at the given timestamp. Deterministic: identical
// inputs and key always yield the identical signature.
func (s *RequestSigner) SignAt(method, path string, body []byte, timestamp int64) (string, error) {
	if s.destroyed {
		return "", ErrSignerDestroyed
	}

	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write(canonicalMessage(method, path, body, timestamp))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the expected signature for the request and compares it
// against the supplied one in constant time. Any decode failure, length
// mismatch or byte mismatch yields false; callers cannot distinguish
// "tampered" from "malformed" from "wrong key". A destroyed signer verifies
// nothing.
func (s *RequestSigner) Verify(method, path string, body []byte, timestamp int64, signature string) bool {
	if s.destroyed {
		return false
	}

	supplied, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write(canonicalMessage(method, path, body, timestamp))
	return ConstantTimeEqual(mac.Sum(nil), supplied)
}

// Destroy zeroes the retained signing key. Idempotent; subsequent Sign calls
// fail with ErrSignerDestroyed and Verify returns false.
func (s *RequestSigner) Destroy() {
	if s.destroyed {
		return
	}
	for i := range s.signingKey {
		s.signingKey[i] = 0
	}
	s.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (s *RequestSigner) Destroyed() bool {
	return s.destroyed
}

// canonicalMessage builds the deterministic byte encoding used as the sole
// signing input: METHOD\nPATH\nTIMESTAMP\nBODY.
func canonicalMessage(method, path string, body []byte, timestamp int64) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.ToUpper(method))
	buf.WriteByte('\n')
	buf.WriteString(path)
	buf.WriteByte('\n')
	buf.WriteString(strconv.FormatInt(timestamp, 10))
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes()
}
