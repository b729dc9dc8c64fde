package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/hireassist/backend/internal/auth/domain"
	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	"github.com/hireassist/backend/internal/storage"
	"github.com/hireassist/backend/internal/user/domain"
)

func plainValue(v cryptoDomain.FieldValue) string {
	s, _ := v.Plain()
	return s
}

func newUserRecord(id string) *domain.UserRecord {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.UserRecord{
		ID:         id,
		CreatedAt:  now,
		LastActive: now,
		Profile: domain.Profile{
			"fullName": cryptoDomain.PlainText("Ada Lovelace"),
		},
		Settings: domain.DefaultSettings(),
		Resumes:  []string{},
	}
}

func TestKVUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing user returns not found", func(t *testing.T) {
		repo := NewKVUserRepository(storage.NewMemoryStore())
		_, err := repo.Get(ctx, "usr_missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("save then get round trip", func(t *testing.T) {
		repo := NewKVUserRepository(storage.NewMemoryStore())
		record := newUserRecord("usr_abc")
		require.NoError(t, repo.Save(ctx, record))

		got, err := repo.Get(ctx, "usr_abc")
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, "Ada Lovelace", plainValue(got.Profile["fullName"]))
	})

	t.Run("delete removes record", func(t *testing.T) {
		repo := NewKVUserRepository(storage.NewMemoryStore())
		require.NoError(t, repo.Save(ctx, newUserRecord("usr_abc")))
		require.NoError(t, repo.Delete(ctx, "usr_abc"))

		_, err := repo.Get(ctx, "usr_abc")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("list returns all users", func(t *testing.T) {
		repo := NewKVUserRepository(storage.NewMemoryStore())
		require.NoError(t, repo.Save(ctx, newUserRecord("usr_one")))
		require.NoError(t, repo.Save(ctx, newUserRecord("usr_two")))

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func newSessionRecord(userID, token string) *domain.SessionRecord {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.SessionRecord{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		LastUsed:  now,
	}
}

func TestKVSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing session returns not found", func(t *testing.T) {
		repo := NewKVSessionRepository(storage.NewMemoryStore())
		_, err := repo.GetByToken(ctx, "nope")
		assert.ErrorIs(t, err, authDomain.ErrSessionNotFound)
	})

	t.Run("save then get round trip", func(t *testing.T) {
		repo := NewKVSessionRepository(storage.NewMemoryStore())
		record := newSessionRecord("usr_abc", "token-1")
		require.NoError(t, repo.Save(ctx, record))

		got, err := repo.GetByToken(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, "usr_abc", got.UserID)
	})

	t.Run("delete by user removes only that user's sessions", func(t *testing.T) {
		repo := NewKVSessionRepository(storage.NewMemoryStore())
		require.NoError(t, repo.Save(ctx, newSessionRecord("usr_abc", "token-1")))
		require.NoError(t, repo.Save(ctx, newSessionRecord("usr_abc", "token-2")))
		require.NoError(t, repo.Save(ctx, newSessionRecord("usr_xyz", "token-3")))

		deleted, err := repo.DeleteByUserID(ctx, "usr_abc")
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		_, err = repo.GetByToken(ctx, "token-1")
		assert.ErrorIs(t, err, authDomain.ErrSessionNotFound)

		got, err := repo.GetByToken(ctx, "token-3")
		require.NoError(t, err)
		assert.Equal(t, "usr_xyz", got.UserID)
	})
}
