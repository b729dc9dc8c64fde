// Package domain defines the user directory's core entities: user records,
// session records, profiles, and settings.
package domain

import (
	"time"

	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	apperrors "github.com/hireassist/backend/internal/errors"
)

// SensitiveFields lists the profile field names that are stored encrypted.
// Every other profile field is stored as plaintext.
var SensitiveFields = []string{"fullName", "email", "phone"}

// ProfileUpdatedAtKey is the profile key stamped on every profile update.
const ProfileUpdatedAtKey = "updatedAt"

// Profile maps field names to tagged values. Sensitive fields hold
// encrypted blobs at rest and plaintext in API responses.
type Profile map[string]cryptoDomain.FieldValue

// Clone returns a shallow copy of the profile. FieldValue is immutable, so
// a new map is enough to keep callers from mutating stored state.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// UserRecord is a registered user. The directory exclusively owns these
// instances; the key-value store only ever sees their serialized form.
type UserRecord struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
	LastLogin  time.Time `json:"lastLogin"`
	Profile    Profile   `json:"profile"`
	Settings   Settings  `json:"settings"`
	Resumes    []string  `json:"resumes"`
	Metadata   Metadata  `json:"metadata"`
}

// Metadata is registration provenance, write-once at creation.
type Metadata struct {
	RegistrationIP string `json:"registrationIP"`
	UserAgent      string `json:"userAgent"`
	Fingerprint    string `json:"registrationFingerprint"`
}

// RequestContext carries the client characteristics of the request that
// triggered an operation.
type RequestContext struct {
	IP        string
	UserAgent string
	Language  string
}

// Stats summarizes directory usage. A session counts as active when used in
// the last hour; a user counts as recent when active in the last day.
type Stats struct {
	TotalUsers     int       `json:"totalUsers"`
	TotalSessions  int       `json:"totalSessions"`
	ActiveSessions int       `json:"activeSessions"`
	RecentUsers    int       `json:"recentUsers"`
	Timestamp      time.Time `json:"timestamp"`
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.Wrap(apperrors.ErrNotFound, "user not found")
)
