// Package validation provides sanitizing validators for profile and
// settings input. The directory persists only the sanitized output of this
// package, never raw caller input.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/hireassist/backend/internal/errors"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// harmfulPatterns reject script injection attempts before any other rule
	// runs against the raw input.
	harmfulPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)data:`),
		regexp.MustCompile(`(?i)vbscript:`),
		regexp.MustCompile(`(?i)onload`),
		regexp.MustCompile(`(?i)onerror`),
	}
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// stripMarkup removes HTML tags and collapses whitespace runs.
func stripMarkup(input string) string {
	out := htmlTagPattern.ReplaceAllString(input, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// containsHarmfulContent checks the raw input for script injection markers.
func containsHarmfulContent(input string) bool {
	for _, pattern := range harmfulPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}

// newError builds a jellydator validation error with a stable code.
func newError(code, message string) validation.Error {
	return validation.NewError(code, message)
}
