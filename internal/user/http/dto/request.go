// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	appValidation "github.com/hireassist/backend/internal/validation"
)

// RegisterRequest is the registration request body. Profile and settings are
// both optional; an empty body registers an anonymous user with default
// settings.
type RegisterRequest struct {
	Profile  appValidation.ProfileInput  `json:"profile"`
	Settings appValidation.SettingsInput `json:"settings"`
}

// UpdateProfileRequest is the profile update request body. Only supplied
// fields are changed.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
}

// ToProfileInput converts the request to a validation input.
func (r UpdateProfileRequest) ToProfileInput() appValidation.ProfileInput {
	return appValidation.ProfileInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		LinkedIn: r.LinkedIn,
	}
}

// UpdateSettingsRequest is the settings update request body. Only supplied
// options are changed.
type UpdateSettingsRequest struct {
	BackendURL       *string              `json:"backendUrl"`
	AutoFill         *bool                `json:"autoFill"`
	SmartSuggestions *bool                `json:"smartSuggestions"`
	Notifications    *bool                `json:"notifications"`
	Theme            *string              `json:"theme"`
	Language         *string              `json:"language"`
	Privacy          *UpdatePrivacyOption `json:"privacy"`
}

// UpdatePrivacyOption carries the privacy options of a settings update.
type UpdatePrivacyOption struct {
	ShareData *bool `json:"shareData"`
	Analytics *bool `json:"analytics"`
}

// ToSettingsInput converts the request to a validation input.
func (r UpdateSettingsRequest) ToSettingsInput() appValidation.SettingsInput {
	input := appValidation.SettingsInput{
		BackendURL:       r.BackendURL,
		AutoFill:         r.AutoFill,
		SmartSuggestions: r.SmartSuggestions,
		Notifications:    r.Notifications,
		Theme:            r.Theme,
		Language:         r.Language,
	}
	if r.Privacy != nil {
		input.Privacy = &appValidation.PrivacyInput{
			ShareData: r.Privacy.ShareData,
			Analytics: r.Privacy.Analytics,
		}
	}
	return input
}
