package repository

import (
	"context"
	"encoding/json"
	"errors"

	authDomain "github.com/hireassist/backend/internal/auth/domain"
	apperrors "github.com/hireassist/backend/internal/errors"
	"github.com/hireassist/backend/internal/storage"
	"github.com/hireassist/backend/internal/user/domain"
)

// KVSessionRepository stores session records under "session:<token>".
type KVSessionRepository struct {
	store storage.Store
}

// NewKVSessionRepository creates a session repository on the given store.
func NewKVSessionRepository(store storage.Store) *KVSessionRepository {
	return &KVSessionRepository{store: store}
}

// GetByToken returns the session record for token, or ErrSessionNotFound.
func (r *KVSessionRepository) GetByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	data, err := r.store.Get(ctx, storage.SessionKeyPrefix+token)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, authDomain.ErrSessionNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load session record")
	}

	var record domain.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode session record")
	}
	return &record, nil
}

// Save stores the session record keyed by its token.
func (r *KVSessionRepository) Save(ctx context.Context, record *domain.SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode session record")
	}
	if err := r.store.Set(ctx, storage.SessionKeyPrefix+record.Token, data); err != nil {
		return apperrors.Wrap(err, "failed to store session record")
	}
	return nil
}

// Delete removes the session record for token.
func (r *KVSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, storage.SessionKeyPrefix+token); err != nil {
		return apperrors.Wrap(err, "failed to delete session record")
	}
	return nil
}

// DeleteByUserID removes every session belonging to userID and returns how
// many were deleted.
func (r *KVSessionRepository) DeleteByUserID(ctx context.Context, userID string) (int, error) {
	records, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, record := range records {
		if record.UserID != userID {
			continue
		}
		if err := r.store.Delete(ctx, storage.SessionKeyPrefix+record.Token); err != nil {
			return deleted, apperrors.Wrap(err, "failed to delete session record")
		}
		deleted++
	}
	return deleted, nil
}

// List returns all stored session records.
func (r *KVSessionRepository) List(ctx context.Context) ([]*domain.SessionRecord, error) {
	keys, err := r.store.Keys(ctx, storage.SessionKeyPrefix)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list session keys")
	}

	records := make([]*domain.SessionRecord, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.Get(ctx, key)
		if errors.Is(err, storage.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to load session record")
		}

		var record domain.SessionRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode session record")
		}
		records = append(records, &record)
	}
	return records, nil
}
