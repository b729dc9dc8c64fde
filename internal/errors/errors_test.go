package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "user lookup")
		require.Error(t, wrapped)
		assert.Equal(t, "user lookup: not found", wrapped.Error())
		assert.True(t, Is(wrapped, ErrNotFound))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		inner := Wrap(ErrUnauthorized, "token expired")
		outer := Wrap(inner, "session validation")
		assert.True(t, Is(outer, ErrUnauthorized))
		assert.Equal(t, "session validation: token expired: unauthorized", outer.Error())
	})
}

func TestIs(t *testing.T) {
	t.Run("distinct sentinels do not match", func(t *testing.T) {
		assert.False(t, Is(ErrNotFound, ErrConflict))
		assert.False(t, Is(ErrIntegrity, ErrUnauthorized))
	})
}
