package client

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

// sensitiveJSONFields are body fields whose values are masked before a
// request or response body reaches a log line.
var sensitiveJSONFields = []string{"sso_token", "af_token", "license_key"}

// RedactCredential masks a credential-bearing header value for logging:
// "<first3>...<last3>" for values longer than 8 characters, "***" otherwise.
// Bearer values keep 4 tail characters so distinct tokens stay tellable
// apart in logs without revealing material.
func RedactCredential(value string) string {
	if len(value) <= 8 {
		return "***"
	}
	if strings.HasPrefix(value, "Bearer ") {
		return value[:3] + "..." + value[len(value)-4:]
	}
	return value[:3] + "..." + value[len(value)-3:]
}

// redactHeaders converts headers to log attrs, masking any header whose name
// suggests credential content.
func redactHeaders(headers http.Header) []any {
	attrs := make([]any, 0, len(headers))
	for name, values := range headers {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		lower := strings.ToLower(name)
		if strings.Contains(lower, "authorization") ||
			strings.Contains(lower, "cookie") ||
			strings.Contains(lower, "token") ||
			strings.Contains(lower, "signature") {
			value = RedactCredential(value)
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}

// redactBody renders a request/response body for logging: size-capped,
// binary-safe, with sensitive JSON field values masked.
func redactBody(body []byte, maxSize int) string {
	if len(body) == 0 {
		return ""
	}
	if maxSize >= 0 && len(body) > maxSize {
		return "<body too large>"
	}
	if !utf8.Valid(body) {
		return "<binary data>"
	}

	text := string(body)
	for _, field := range sensitiveJSONFields {
		text = maskJSONField(text, field)
	}
	return text
}

// maskJSONField replaces every `"field":"value"` occurrence with a masked
// value. Text-level masking keeps the original payload shape intact, which
// matters when the body is not a full JSON document.
func maskJSONField(text, field string) string {
	marker := `"` + field + `":"`
	var b strings.Builder
	for {
		start := strings.Index(text, marker)
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		valueStart := start + len(marker)
		end := strings.IndexByte(text[valueStart:], '"')
		if end < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:valueStart])
		b.WriteString("***")
		text = text[valueStart+end:]
	}
}
