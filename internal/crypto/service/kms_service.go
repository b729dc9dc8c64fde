package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/hireassist/backend/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService resolves secrets held encrypted at rest through a cloud or
// vault KMS. It is used to decrypt the token signing secret when
// TOKEN_SECRET_ENCRYPTED and KMS_KEY_URI are configured.
type KMSService interface {
	// DecryptSecret decrypts a base64-encoded ciphertext with the keeper at
	// keyURI and returns the plaintext secret.
	DecryptSecret(ctx context.Context, keyURI, ciphertextB64 string) (string, error)
}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// DecryptSecret opens a secrets.Keeper for the keyURI and decrypts the
// ciphertext. Supports: gcpkms://, awskms://, azurekeyvault://,
// hashivault://, base64key://.
func (k *kmsService) DecryptSecret(ctx context.Context, keyURI, ciphertextB64 string) (string, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close()

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", apperrors.Wrap(err, "encrypted secret must be base64-encoded")
	}

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to decrypt secret")
	}

	return string(plaintext), nil
}
