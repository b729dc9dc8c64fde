package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/hireassist/backend/internal/errors"
)

// userIDRandomBytes is the amount of entropy in generated user IDs: 24 bytes
// (192 bits) makes collisions a practical impossibility without requiring
// coordination between processes.
const userIDRandomBytes = 24

// RandomUserID generates a new opaque user identifier of the form
// "usr_<timestamp>_<random>". The timestamp component (unix milliseconds in
// base36) gives IDs generated by one process a lexical ordering; uniqueness
// itself rests on the random component.
func RandomUserID() (string, error) {
	randomBytes := make([]byte, userIDRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate user id")
	}

	random := base64.RawURLEncoding.EncodeToString(randomBytes)
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	return fmt.Sprintf("usr_%s_%s", timestamp, random), nil
}

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate random bytes")
	}
	return b, nil
}
