package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hireassist/backend/internal/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateSettings(t *testing.T) {
	t.Run("empty input is valid", func(t *testing.T) {
		_, err := ValidateSettings(SettingsInput{})
		assert.NoError(t, err)
	})

	t.Run("valid options pass through", func(t *testing.T) {
		out, err := ValidateSettings(SettingsInput{
			BackendURL: strPtr("https://api.example.com"),
			AutoFill:   boolPtr(false),
			Theme:      strPtr("dark"),
			Language:   strPtr("de"),
			Privacy:    &PrivacyInput{Analytics: boolPtr(true)},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", *out.BackendURL)
		assert.False(t, *out.AutoFill)
		assert.Equal(t, "dark", *out.Theme)
		require.NotNil(t, out.Privacy)
		assert.True(t, *out.Privacy.Analytics)
	})

	t.Run("invalid backend url is rejected", func(t *testing.T) {
		_, err := ValidateSettings(SettingsInput{BackendURL: strPtr("not a url")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		_, err := ValidateSettings(SettingsInput{Theme: strPtr("solarized")})
		assert.Error(t, err)
	})

	t.Run("unknown language is rejected", func(t *testing.T) {
		_, err := ValidateSettings(SettingsInput{Language: strPtr("xx")})
		assert.Error(t, err)
	})
}
