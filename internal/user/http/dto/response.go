package dto

import (
	"time"

	"github.com/hireassist/backend/internal/user/domain"
	"github.com/hireassist/backend/internal/user/usecase"
)

// RegisterResponse contains the result of a registration.
// SECURITY: The session token is only returned here and on no other route.
type RegisterResponse struct {
	UserID    string          `json:"userId"`
	Token     string          `json:"sessionToken"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   domain.Profile  `json:"profile"`
	Settings  domain.Settings `json:"settings"`
}

// MapRegisterToResponse converts a registration result to an API response.
func MapRegisterToResponse(output *usecase.RegisterOutput) RegisterResponse {
	return RegisterResponse{
		UserID:    output.User.ID,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		Profile:   output.User.Profile,
		Settings:  output.User.Settings,
	}
}

// UserResponse represents a user in API responses. The profile carries
// decrypted values; the token and resume contents are never included.
type UserResponse struct {
	UserID     string          `json:"userId"`
	CreatedAt  time.Time       `json:"createdAt"`
	LastActive time.Time       `json:"lastActive"`
	Profile    domain.Profile  `json:"profile"`
	Settings   domain.Settings `json:"settings"`
}

// MapUserToResponse converts a domain user record to an API response.
func MapUserToResponse(record *domain.UserRecord) UserResponse {
	return UserResponse{
		UserID:     record.ID,
		CreatedAt:  record.CreatedAt,
		LastActive: record.LastActive,
		Profile:    record.Profile,
		Settings:   record.Settings,
	}
}

// ValidateSessionResponse contains the result of a session validation.
type ValidateSessionResponse struct {
	Valid            bool      `json:"valid"`
	UserID           string    `json:"userId"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	LastUsed         time.Time `json:"lastUsed"`
}

// MapValidateSessionToResponse converts a validation result to an API response.
func MapValidateSessionToResponse(output *usecase.ValidateSessionOutput) ValidateSessionResponse {
	return ValidateSessionResponse{
		Valid:            true,
		UserID:           output.User.ID,
		ExpiresAt:        output.Payload.ExpiresAt(),
		RemainingSeconds: int64(output.Remaining.Seconds()),
		LastUsed:         output.Session.LastUsed,
	}
}

// StatsResponse represents directory usage counters in API responses.
type StatsResponse struct {
	TotalUsers     int       `json:"totalUsers"`
	TotalSessions  int       `json:"totalSessions"`
	ActiveSessions int       `json:"activeSessions"`
	RecentUsers    int       `json:"recentUsers"`
	Timestamp      time.Time `json:"timestamp"`
}

// MapStatsToResponse converts domain stats to an API response.
func MapStatsToResponse(stats *domain.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:     stats.TotalUsers,
		TotalSessions:  stats.TotalSessions,
		ActiveSessions: stats.ActiveSessions,
		RecentUsers:    stats.RecentUsers,
		Timestamp:      stats.Timestamp,
	}
}
