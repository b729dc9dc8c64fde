// Package repository persists user and session records as JSON documents on
// the key-value store.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	apperrors "github.com/hireassist/backend/internal/errors"
	"github.com/hireassist/backend/internal/storage"
	"github.com/hireassist/backend/internal/user/domain"
)

// KVUserRepository stores user records under "user:<id>".
type KVUserRepository struct {
	store storage.Store
}

// NewKVUserRepository creates a user repository on the given store.
func NewKVUserRepository(store storage.Store) *KVUserRepository {
	return &KVUserRepository{store: store}
}

// Get returns the user record for id, or ErrUserNotFound.
func (r *KVUserRepository) Get(ctx context.Context, id string) (*domain.UserRecord, error) {
	data, err := r.store.Get(ctx, storage.UserKeyPrefix+id)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load user record")
	}

	var record domain.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode user record")
	}
	return &record, nil
}

// Save stores the user record, overwriting any previous version.
func (r *KVUserRepository) Save(ctx context.Context, record *domain.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode user record")
	}
	if err := r.store.Set(ctx, storage.UserKeyPrefix+record.ID, data); err != nil {
		return apperrors.Wrap(err, "failed to store user record")
	}
	return nil
}

// Delete removes the user record for id.
func (r *KVUserRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, storage.UserKeyPrefix+id); err != nil {
		return apperrors.Wrap(err, "failed to delete user record")
	}
	return nil
}

// List returns all stored user records. Used for stats only; records are
// returned with their profiles still encrypted.
func (r *KVUserRepository) List(ctx context.Context) ([]*domain.UserRecord, error) {
	keys, err := r.store.Keys(ctx, storage.UserKeyPrefix)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list user keys")
	}

	records := make([]*domain.UserRecord, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.Get(ctx, key)
		if errors.Is(err, storage.ErrKeyNotFound) {
			// Deleted between enumeration and read
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to load user record")
		}

		var record domain.UserRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode user record")
		}
		records = append(records, &record)
	}
	return records, nil
}
