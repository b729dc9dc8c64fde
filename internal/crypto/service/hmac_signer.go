package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HMACSigner implements Signer using HMAC-SHA256 with a server secret.
// Signatures are base64url-encoded without padding. The signer is stateless
// and safe for concurrent use.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner creates a signer bound to the given secret. The secret is
// injected at construction; the signer never reads process environment.
func NewHMACSigner(secret []byte) *HMACSigner {
	return &HMACSigner{secret: secret}
}

// Sign computes the HMAC-SHA256 authentication code over payload.
func (s *HMACSigner) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over payload and compares it with the
// supplied one in constant time.
func (s *HMACSigner) Verify(payload []byte, signature string) bool {
	expected := s.Sign(payload)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
