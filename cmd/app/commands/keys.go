package commands

import (
	"encoding/base64"
	"fmt"
	"io"

	cryptoService "github.com/hireassist/backend/internal/crypto/service"
)

const generatedSecretBytes = 32

// RunGenerateSecret prints a fresh random value suitable for TOKEN_SECRET.
func RunGenerateSecret(w io.Writer) error {
	secret, err := randomBase64(generatedSecretBytes)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "TOKEN_SECRET=%s\n", secret)
	return nil
}

// RunGenerateEncryptionKey prints a fresh random value suitable for
// ENCRYPTION_KEY.
func RunGenerateEncryptionKey(w io.Writer) error {
	key, err := randomBase64(generatedSecretBytes)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "ENCRYPTION_KEY=%s\n", key)
	return nil
}

func randomBase64(n int) (string, error) {
	raw, err := cryptoService.RandomBytes(n)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
