package service

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// fingerprintLength is the number of base64url characters kept from the
// component hash. A fingerprint is a weak device signal, not a security
// boundary; 16 characters is plenty to distinguish browsers.
const fingerprintLength = 16

// Fingerprint derives a short identifier from client characteristics.
// Missing components are replaced with "unknown" so the output is stable
// for clients that omit headers.
func Fingerprint(userAgent, ip, language string) string {
	components := []string{
		orUnknown(userAgent),
		orUnknown(ip),
		orUnknown(language),
	}

	sum := sha256.Sum256([]byte(strings.Join(components, "|")))
	encoded := base64.RawURLEncoding.EncodeToString(sum[:])
	return encoded[:fingerprintLength]
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
