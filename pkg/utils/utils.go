// Package utils provides helpers for preparing signed requests by hand,
// for clients that cannot use the full Client (curl scripts, tests,
// non-HTTP transports).
package utils

import (
	"strconv"

	"github.com/truthlinked/go-sdk/pkg/constants"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

// PrepareRequestHeaders signs the request and returns the headers to
// attach. The license key is also sent as a bearer credential, matching
// what the API expects on authenticated endpoints.
func PrepareRequestHeaders(licenseKey, method, path string, body []byte) (map[string]string, error) {
	signer, err := signing.NewRequestSigner(licenseKey)
	if err != nil {
		return nil, err
	}
	defer signer.Destroy()

	timestamp, signature, err := signer.Sign(method, path, body)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		constants.HeaderTimestamp:     strconv.FormatInt(timestamp, 10),
		constants.HeaderSignature:     signature,
		constants.HeaderAuthorization: "Bearer " + licenseKey,
	}, nil
}

// PrepareRequestHeadersAt is PrepareRequestHeaders with an explicit
// timestamp, for reproducing a signature.
func PrepareRequestHeadersAt(licenseKey, method, path string, body []byte, timestamp int64) (map[string]string, error) {
	signer, err := signing.NewRequestSigner(licenseKey)
	if err != nil {
		return nil, err
	}
	defer signer.Destroy()

	signature, err := signer.SignAt(method, path, body, timestamp)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		constants.HeaderTimestamp:     strconv.FormatInt(timestamp, 10),
		constants.HeaderSignature:     signature,
		constants.HeaderAuthorization: "Bearer " + licenseKey,
	}, nil
}
