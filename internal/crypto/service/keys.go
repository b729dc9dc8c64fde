package service

import (
	"golang.org/x/crypto/scrypt"

	apperrors "github.com/hireassist/backend/internal/errors"
)

// scrypt cost parameters. These match the interactive defaults the stored
// blobs were produced with; changing them invalidates every existing blob.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	derivedKeyLn = 32
)

// Salts for the two key derivation contexts. The encryption salt is used
// when a dedicated passphrase is configured; the fallback salt keeps the
// derived-from-signing-secret key domain-separated from the signing secret
// itself.
const (
	EncryptionSalt         = "hireassist-salt"
	FallbackEncryptionSalt = "hireassist-encryption-salt"
)

// DeriveKey derives a 32-byte symmetric key from a passphrase and salt using
// scrypt. The derivation is deterministic: the same inputs always produce
// the same key.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(secret, salt, scryptN, scryptR, scryptP, derivedKeyLn)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to derive key")
	}
	return key, nil
}

// FieldEncryptionKey resolves the AES key for field encryption. A dedicated
// passphrase is preferred; when it is empty the key is derived from the
// token signing secret under a distinct salt. Callers are responsible for
// logging the fallback state loudly at startup.
func FieldEncryptionKey(passphrase, signingSecret string) ([]byte, error) {
	if passphrase != "" {
		return DeriveKey([]byte(passphrase), []byte(EncryptionSalt))
	}
	return DeriveKey([]byte(signingSecret), []byte(FallbackEncryptionSalt))
}
