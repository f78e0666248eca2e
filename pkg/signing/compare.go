package signing

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b are equal byte sequences.
// The comparison time does not depend on the position of the first differing
// byte. The length check is variable-time: unequal lengths return false
// immediately, which matches standard practice since signature lengths are
// not secret.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
