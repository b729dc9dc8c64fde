package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"

	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	apperrors "github.com/hireassist/backend/internal/errors"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM.
//
// Each Encrypt call generates a unique 12-byte nonce with crypto/rand; with
// GCM a nonce must never be reused under the same key. The 16-byte
// authentication tag is carried separately in the blob so the stored shape
// matches what existing clients persist.
//
// The cipher instance is stateless and safe for concurrent use from
// multiple goroutines.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance. The key must be
// exactly 32 bytes; generate keys with crypto/rand or DeriveKey.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create AES cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create GCM")
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext and returns a blob carrying the hex-encoded
// ciphertext, nonce, and authentication tag plus the algorithm identifier.
func (a *AESGCMCipher) Encrypt(plaintext []byte) (*cryptoDomain.EncryptedBlob, error) {
	nonce := make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrEncryptionFailure, "failed to generate nonce")
	}

	sealed := a.aead.Seal(nil, nonce, plaintext, nil)

	// Seal appends the tag to the ciphertext; split it back out so the blob
	// carries the tag as its own attribute.
	tagStart := len(sealed) - a.aead.Overhead()
	return &cryptoDomain.EncryptedBlob{
		Ciphertext: hex.EncodeToString(sealed[:tagStart]),
		IV:         hex.EncodeToString(nonce),
		AuthTag:    hex.EncodeToString(sealed[tagStart:]),
		Algorithm:  cryptoDomain.AlgorithmAESGCM,
	}, nil
}

// Decrypt verifies the blob's authentication tag and returns the plaintext.
// Tag mismatch, a corrupt nonce, or any modification of the ciphertext
// yields ErrIntegrity; no plaintext is ever returned on failure.
func (a *AESGCMCipher) Decrypt(blob *cryptoDomain.EncryptedBlob) ([]byte, error) {
	if blob.Algorithm != "" && blob.Algorithm != cryptoDomain.AlgorithmAESGCM {
		return nil, apperrors.Wrap(cryptoDomain.ErrUnsupportedAlgorithm, blob.Algorithm)
	}

	ciphertext, err := hex.DecodeString(blob.Ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIntegrity, "malformed ciphertext encoding")
	}
	nonce, err := hex.DecodeString(blob.IV)
	if err != nil || len(nonce) != a.aead.NonceSize() {
		return nil, apperrors.Wrap(apperrors.ErrIntegrity, "malformed nonce")
	}
	tag, err := hex.DecodeString(blob.AuthTag)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIntegrity, "malformed authentication tag")
	}

	plaintext, err := a.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIntegrity, "authentication tag mismatch")
	}
	return plaintext, nil
}
