package signing

import "errors"

// ErrEmptyLicenseKey is returned when a credential is constructed from an
// empty value. Degenerate key material is rejected at the door instead of
// silently producing a signer nobody can talk to.
var ErrEmptyLicenseKey = errors.New("license key cannot be empty")

// LicenseKey holds a raw credential in a mutable byte buffer so the secret
// can be irreversibly overwritten on Destroy. It must not be copied after
// creation; the buffer is exclusively owned by this handle.
//
// Concurrent Destroy racing against AsString/Sign on the same instance is
// undefined; callers keep single-owner discipline or serialize access.
type LicenseKey struct {
	key       []byte
	destroyed bool
}

// NewLicenseKey creates a credential handle owning a private copy of raw.
func NewLicenseKey(raw string) (*LicenseKey, error) {
	if raw == "" {
		return nil, ErrEmptyLicenseKey
	}
	return &LicenseKey{key: []byte(raw)}, nil
}

// AsString returns the raw secret. The value is an opaque payload for
// signing/transport only and must never end up in logs or error messages.
// After Destroy it returns the same-length NUL placeholder, not the secret.
func (k *LicenseKey) AsString() string {
	return string(k.key)
}

// Redacted returns a fixed-shape partial reveal safe for logging:
// "<first3>...<last3>" for keys longer than 8 characters, "***" otherwise.
// A destroyed key always redacts to "***".
func (k *LicenseKey) Redacted() string {
	if k.destroyed || len(k.key) <= 8 {
		return "***"
	}
	return string(k.key[:3]) + "..." + string(k.key[len(k.key)-3:])
}

// Destroy overwrites the secret with NUL bytes of identical length and marks
// the handle destroyed. Idempotent and irreversible.
func (k *LicenseKey) Destroy() {
	if k.destroyed {
		return
	}
	for i := range k.key {
		k.key[i] = 0
	}
	k.destroyed = true
}

// Destroyed reports whether Destroy has been called. The flag is monotonic.
func (k *LicenseKey) Destroyed() bool {
	return k.destroyed
}

// String implements fmt.Stringer via Redacted, so a LicenseKey that ends up
// in a log line or error format never reveals the secret.
func (k *LicenseKey) String() string {
	return k.Redacted()
}
