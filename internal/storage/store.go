// Package storage defines the key-value store contract backing the user
// directory, with in-memory and redis implementations.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a requested key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Key prefixes for the records the directory persists.
const (
	UserKeyPrefix    = "user:"
	SessionKeyPrefix = "session:"
)

// Store is a passive key-value backing store: get/set/delete plus prefix
// enumeration. It carries no domain behavior; all record semantics live in
// the repositories above it. Implementations must be safe for concurrent
// use.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
