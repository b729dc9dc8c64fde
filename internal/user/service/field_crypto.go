// Package service provides field-level encryption for user profiles.
package service

import (
	"log/slog"

	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	cryptoService "github.com/hireassist/backend/internal/crypto/service"
	apperrors "github.com/hireassist/backend/internal/errors"
	userDomain "github.com/hireassist/backend/internal/user/domain"
)

// FieldCrypto encrypts and decrypts individual profile fields. Blobs are
// only ever produced and consumed here; the rest of the directory treats
// them as opaque FieldValue contents.
type FieldCrypto struct {
	cipher cryptoService.AEAD
	logger *slog.Logger
}

// NewFieldCrypto creates a FieldCrypto backed by the given AEAD cipher.
func NewFieldCrypto(cipher cryptoService.AEAD, logger *slog.Logger) *FieldCrypto {
	return &FieldCrypto{cipher: cipher, logger: logger}
}

// EncryptField encrypts a plaintext value. An already-encrypted value is
// returned unchanged; callers must not rely on double encryption.
func (f *FieldCrypto) EncryptField(value cryptoDomain.FieldValue) (cryptoDomain.FieldValue, error) {
	plain, ok := value.Plain()
	if !ok {
		return value, nil
	}

	blob, err := f.cipher.Encrypt([]byte(plain))
	if err != nil {
		return cryptoDomain.FieldValue{}, apperrors.Wrap(err, "failed to encrypt field")
	}
	return cryptoDomain.Encrypted(blob), nil
}

// DecryptField decrypts an encrypted value. A plaintext value is returned
// unchanged so unencrypted legacy values degrade gracefully. A blob that
// fails its tag check surfaces ErrIntegrity to the caller.
func (f *FieldCrypto) DecryptField(value cryptoDomain.FieldValue) (cryptoDomain.FieldValue, error) {
	blob, ok := value.Blob()
	if !ok {
		return value, nil
	}

	plaintext, err := f.cipher.Decrypt(blob)
	if err != nil {
		return cryptoDomain.FieldValue{}, err
	}
	return cryptoDomain.PlainText(string(plaintext)), nil
}

// EncryptProfile encrypts the designated sensitive fields of a profile.
// A field that fails to encrypt is logged and left at its current value so
// one bad field never aborts the whole record operation.
func (f *FieldCrypto) EncryptProfile(profile userDomain.Profile) userDomain.Profile {
	out := profile.Clone()
	for _, name := range userDomain.SensitiveFields {
		value, ok := out[name]
		if !ok || value.IsEncrypted() {
			continue
		}

		encrypted, err := f.EncryptField(value)
		if err != nil {
			f.logger.Warn("failed to encrypt profile field",
				slog.String("field", name),
				slog.Any("error", err),
			)
			continue
		}
		out[name] = encrypted
	}
	return out
}

// DecryptProfile decrypts every encrypted value in a profile. A field that
// fails its integrity check is logged and returned still-encrypted rather
// than corrupting or aborting the response; callers see the stored blob.
func (f *FieldCrypto) DecryptProfile(profile userDomain.Profile) userDomain.Profile {
	out := profile.Clone()
	for name, value := range out {
		if !value.IsEncrypted() {
			continue
		}

		decrypted, err := f.DecryptField(value)
		if err != nil {
			f.logger.Warn("failed to decrypt profile field",
				slog.String("field", name),
				slog.Any("error", err),
			)
			continue
		}
		out[name] = decrypted
	}
	return out
}
