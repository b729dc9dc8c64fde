package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hireassist/backend/internal/errors"
)

func strPtr(s string) *string { return &s }

func TestValidateProfile_FullName(t *testing.T) {
	t.Run("valid name passes through", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{FullName: strPtr("Ada Lovelace")})
		require.NoError(t, err)
		require.NotNil(t, out.FullName)
		assert.Equal(t, "Ada Lovelace", *out.FullName)
	})

	t.Run("markup is stripped and whitespace collapsed", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{FullName: strPtr("  Ada   <b>Lovelace</b>  ")})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", *out.FullName)
	})

	t.Run("punctuated names are allowed", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{FullName: strPtr("Jean-Luc O'Brien Jr.")})
		require.NoError(t, err)
		assert.Equal(t, "Jean-Luc O'Brien Jr.", *out.FullName)
	})

	t.Run("too short is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{FullName: strPtr("A")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("too long is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{FullName: strPtr(strings.Repeat("a", 101))})
		assert.Error(t, err)
	})

	t.Run("digits are rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{FullName: strPtr("Ada L0velace")})
		assert.Error(t, err)
	})

	t.Run("script content is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{FullName: strPtr("<script>alert(1)</script>")})
		assert.Error(t, err)
	})

	t.Run("absent field stays absent", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{Email: strPtr("ada@example.com")})
		require.NoError(t, err)
		assert.Nil(t, out.FullName)
	})
}

func TestValidateProfile_Email(t *testing.T) {
	t.Run("valid email is lowercased", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{Email: strPtr("  Ada@Example.COM ")})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", *out.Email)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		for _, bad := range []string{"not-an-email", "a@", "@example.com", "a b@example.com"} {
			_, err := ValidateProfile(ProfileInput{Email: strPtr(bad)})
			assert.Error(t, err, "expected %q to fail", bad)
		}
	})

	t.Run("disposable domain is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Email: strPtr("user@tempmail.org")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temporary email")
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Email: strPtr("  ")})
		assert.Error(t, err)
	})
}

func TestValidateProfile_Phone(t *testing.T) {
	t.Run("formatted number is kept", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{Phone: strPtr("+1-555-010-0123")})
		require.NoError(t, err)
		assert.Equal(t, "+1-555-010-0123", *out.Phone)
	})

	t.Run("letters are stripped before validation", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{Phone: strPtr("call 5550100123x")})
		require.NoError(t, err)
		assert.Equal(t, "5550100123", *out.Phone)
	})

	t.Run("too short is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Phone: strPtr("12345")})
		assert.Error(t, err)
	})

	t.Run("all same digits is rejected", func(t *testing.T) {
		for _, fake := range []string{"1111111111", "000-000-0000", "+9 999 999 9999"} {
			_, err := ValidateProfile(ProfileInput{Phone: strPtr(fake)})
			require.Error(t, err, "expected %q to fail", fake)
			assert.Contains(t, err.Error(), "appears to be invalid")
		}
	})

	t.Run("repeated but not uniform digits pass", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{Phone: strPtr("1111111112")})
		require.NoError(t, err)
		assert.Equal(t, "1111111112", *out.Phone)
	})

	t.Run("too long is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{Phone: strPtr("+1 (415) 555-0142")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too long")
	})
}

func TestValidateProfile_LinkedIn(t *testing.T) {
	t.Run("profile url passes", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{LinkedIn: strPtr("https://www.linkedin.com/in/ada")})
		require.NoError(t, err)
		assert.Equal(t, "https://www.linkedin.com/in/ada", *out.LinkedIn)
	})

	t.Run("scheme is defaulted to https", func(t *testing.T) {
		out, err := ValidateProfile(ProfileInput{LinkedIn: strPtr("linkedin.com/in/ada")})
		require.NoError(t, err)
		assert.Equal(t, "https://linkedin.com/in/ada", *out.LinkedIn)
	})

	t.Run("non-linkedin host is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{LinkedIn: strPtr("https://example.com/in/ada")})
		assert.Error(t, err)
	})

	t.Run("lookalike host is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{LinkedIn: strPtr("https://evillinkedin.com/in/ada")})
		assert.Error(t, err)
	})

	t.Run("non-profile path is rejected", func(t *testing.T) {
		_, err := ValidateProfile(ProfileInput{LinkedIn: strPtr("https://linkedin.com/jobs/123")})
		assert.Error(t, err)
	})
}

func TestValidateProfile_MultipleErrors(t *testing.T) {
	_, err := ValidateProfile(ProfileInput{
		FullName: strPtr("X"),
		Email:    strPtr("bad"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "fullName")
	assert.Contains(t, err.Error(), "email")
}
