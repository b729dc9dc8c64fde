package domain

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("key must be exactly 32 bytes")

	// ErrUnsupportedAlgorithm is returned when a blob names an algorithm the
	// service cannot decrypt.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")

	// ErrEncryptionFailure is returned when encrypting a field fails for a
	// reason other than invalid input (e.g., nonce generation).
	ErrEncryptionFailure = errors.New("encryption failed")
)
