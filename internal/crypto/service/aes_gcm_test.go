package service

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	apperrors "github.com/hireassist/backend/internal/errors"
)

func newTestCipher(t *testing.T) *AESGCMCipher {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	c, err := NewAESGCM(key)
	require.NoError(t, err)
	return c
}

func TestNewAESGCM(t *testing.T) {
	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewAESGCM(make([]byte, 16))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("rejects nil key", func(t *testing.T) {
		_, err := NewAESGCM(nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestAESGCMCipher_EncryptDecrypt(t *testing.T) {
	c := newTestCipher(t)

	t.Run("round-trip reproduces plaintext", func(t *testing.T) {
		plaintext := []byte("ada@example.com")

		blob, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AlgorithmAESGCM, blob.Algorithm)
		assert.NotEmpty(t, blob.Ciphertext)
		assert.NotEmpty(t, blob.AuthTag)

		decrypted, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("nonce is fresh per call", func(t *testing.T) {
		first, err := c.Encrypt([]byte("same input"))
		require.NoError(t, err)
		second, err := c.Encrypt([]byte("same input"))
		require.NoError(t, err)

		assert.NotEqual(t, first.IV, second.IV)
		assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
	})

	t.Run("empty plaintext round-trips", func(t *testing.T) {
		blob, err := c.Encrypt([]byte(""))
		require.NoError(t, err)

		decrypted, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("tampered ciphertext fails integrity", func(t *testing.T) {
		blob, err := c.Encrypt([]byte("sensitive"))
		require.NoError(t, err)

		raw, err := hex.DecodeString(blob.Ciphertext)
		require.NoError(t, err)
		raw[0] ^= 0xff
		blob.Ciphertext = hex.EncodeToString(raw)

		_, err = c.Decrypt(blob)
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
	})

	t.Run("tampered tag fails integrity", func(t *testing.T) {
		blob, err := c.Encrypt([]byte("sensitive"))
		require.NoError(t, err)

		raw, err := hex.DecodeString(blob.AuthTag)
		require.NoError(t, err)
		raw[0] ^= 0xff
		blob.AuthTag = hex.EncodeToString(raw)

		_, err = c.Decrypt(blob)
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
	})

	t.Run("wrong key fails integrity", func(t *testing.T) {
		blob, err := c.Encrypt([]byte("sensitive"))
		require.NoError(t, err)

		other := newTestCipher(t)
		_, err = other.Decrypt(blob)
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
	})

	t.Run("unknown algorithm is rejected", func(t *testing.T) {
		blob, err := c.Encrypt([]byte("sensitive"))
		require.NoError(t, err)
		blob.Algorithm = "rot13"

		_, err = c.Decrypt(blob)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("malformed hex is rejected", func(t *testing.T) {
		blob, err := c.Encrypt([]byte("sensitive"))
		require.NoError(t, err)
		blob.IV = "not-hex"

		_, err = c.Decrypt(blob)
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
	})
}
