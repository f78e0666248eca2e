package constants

// HTTP header constants for Truthlinked request authentication.
// Signature and timestamp travel as two separate out-of-band headers
// alongside the request; the bearer credential rides Authorization.
const (
	// HeaderTimestamp carries the signing timestamp (decimal seconds since epoch)
	HeaderTimestamp = "X-Timestamp"

	// HeaderSignature carries the base64 request signature
	HeaderSignature = "X-Signature"

	// HeaderRequestID carries a per-request correlation ID
	HeaderRequestID = "X-Request-ID"

	// HeaderAuthorization carries the bearer license key on authenticated endpoints
	HeaderAuthorization = "Authorization"
)
