package validation

import (
	"net/url"

	validation "github.com/jellydator/validation"
)

// SettingsInput carries caller-supplied settings. Nil pointers mean "option
// not supplied" so partial updates leave unmentioned options untouched.
type SettingsInput struct {
	BackendURL       *string       `json:"backendUrl"`
	AutoFill         *bool         `json:"autoFill"`
	SmartSuggestions *bool         `json:"smartSuggestions"`
	Notifications    *bool         `json:"notifications"`
	Theme            *string       `json:"theme"`
	Language         *string       `json:"language"`
	Privacy          *PrivacyInput `json:"privacy"`
}

// PrivacyInput carries caller-supplied privacy options.
type PrivacyInput struct {
	ShareData *bool `json:"shareData"`
	Analytics *bool `json:"analytics"`
}

var (
	validThemes    = []any{"light", "dark", "auto"}
	validLanguages = []any{"en", "es", "fr", "de", "it", "pt", "hi"}
)

// ValidateSettings validates settings input. Boolean options need no
// sanitization; only the URL and enum options can fail.
func ValidateSettings(input SettingsInput) (SettingsInput, error) {
	errs := validation.Errors{}

	if input.BackendURL != nil {
		parsed, err := url.Parse(*input.BackendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs["backendUrl"] = newError("validation_backend_url", "invalid backend url format")
		}
	}

	if input.Theme != nil {
		if err := validation.Validate(*input.Theme, validation.In(validThemes...)); err != nil {
			errs["theme"] = newError("validation_theme", "theme must be one of: light, dark, auto")
		}
	}

	if input.Language != nil {
		if err := validation.Validate(*input.Language, validation.In(validLanguages...)); err != nil {
			errs["language"] = newError("validation_language", "language must be a valid language code")
		}
	}

	if err := errs.Filter(); err != nil {
		return SettingsInput{}, WrapValidationError(err)
	}
	return input, nil
}
