package domain

import (
	"encoding/json"

	apperrors "github.com/hireassist/backend/internal/errors"
)

// FieldValue is a tagged variant for profile field contents: a value is
// either plaintext or an encrypted blob, never both. Consumers switch on the
// tag instead of probing the value's shape, so unencrypted legacy values and
// encrypted ones flow through the same merge and decrypt paths.
//
// The JSON form is a bare string for plaintext and an EncryptedBlob object
// for encrypted values, matching the records the original clients stored.
type FieldValue struct {
	plain     string
	blob      *EncryptedBlob
	encrypted bool
}

// PlainText builds a FieldValue holding a plaintext string.
func PlainText(value string) FieldValue {
	return FieldValue{plain: value}
}

// Encrypted builds a FieldValue holding an encrypted blob.
func Encrypted(blob *EncryptedBlob) FieldValue {
	return FieldValue{blob: blob, encrypted: true}
}

// IsEncrypted reports whether the value carries an encrypted blob.
func (v FieldValue) IsEncrypted() bool {
	return v.encrypted
}

// Plain returns the plaintext string. The boolean is false when the value is
// encrypted.
func (v FieldValue) Plain() (string, bool) {
	if v.encrypted {
		return "", false
	}
	return v.plain, true
}

// Blob returns the encrypted blob. The boolean is false when the value is
// plaintext.
func (v FieldValue) Blob() (*EncryptedBlob, bool) {
	if !v.encrypted {
		return nil, false
	}
	return v.blob, true
}

// MarshalJSON encodes plaintext values as JSON strings and encrypted values
// as blob objects.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.encrypted {
		return json.Marshal(v.blob)
	}
	return json.Marshal(v.plain)
}

// UnmarshalJSON decodes a JSON string into a plaintext value and an object
// carrying an "encrypted" key into an encrypted value.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = PlainText(s)
		return nil
	}

	var blob EncryptedBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "field value must be a string or an encrypted blob")
	}
	if blob.Ciphertext == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "encrypted field value is missing ciphertext")
	}
	*v = Encrypted(&blob)
	return nil
}
