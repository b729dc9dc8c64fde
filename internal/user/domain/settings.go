package domain

import "time"

// PrivacySettings controls data-sharing options. Both default to off.
type PrivacySettings struct {
	ShareData bool `json:"shareData"`
	Analytics bool `json:"analytics"`
}

// Settings holds per-user extension options, merged from defaults at
// creation and updated field-by-field afterwards.
type Settings struct {
	BackendURL       string          `json:"backendUrl"`
	AutoFill         bool            `json:"autoFill"`
	SmartSuggestions bool            `json:"smartSuggestions"`
	Notifications    bool            `json:"notifications"`
	Theme            string          `json:"theme"`
	Language         string          `json:"language"`
	Privacy          PrivacySettings `json:"privacy"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        *time.Time      `json:"updatedAt,omitempty"`
}

// DefaultSettings returns the settings applied to a new user before any
// caller-supplied values are merged in.
func DefaultSettings() Settings {
	return Settings{
		BackendURL:       "http://localhost:3000",
		AutoFill:         true,
		SmartSuggestions: true,
		Notifications:    true,
		Theme:            "light",
		Language:         "en",
		Privacy: PrivacySettings{
			ShareData: false,
			Analytics: false,
		},
		CreatedAt: time.Now().UTC(),
	}
}
