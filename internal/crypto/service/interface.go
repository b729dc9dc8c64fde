// Package service provides the cryptographic primitives used by the session
// and field encryption layers: secure identifier generation, scrypt key
// derivation, HMAC signing, and AES-256-GCM authenticated encryption.
package service

import (
	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
)

// AEAD defines the interface for authenticated field encryption. Encrypt
// produces a self-describing blob with a fresh nonce per call; Decrypt
// verifies the authentication tag before returning any plaintext.
type AEAD interface {
	Encrypt(plaintext []byte) (*cryptoDomain.EncryptedBlob, error)
	Decrypt(blob *cryptoDomain.EncryptedBlob) ([]byte, error)
}

// Signer defines the interface for deterministic payload authentication.
// Sign produces a base64url code over the payload; Verify recomputes it and
// compares in constant time.
type Signer interface {
	Sign(payload []byte) string
	Verify(payload []byte, signature string) bool
}
