// Package usecase implements the user directory business logic: registration,
// lookup, profile and settings updates, session validation, and deletion.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/hireassist/backend/internal/auth/domain"
	authService "github.com/hireassist/backend/internal/auth/service"
	cryptoDomain "github.com/hireassist/backend/internal/crypto/domain"
	cryptoService "github.com/hireassist/backend/internal/crypto/service"
	apperrors "github.com/hireassist/backend/internal/errors"
	"github.com/hireassist/backend/internal/user/domain"
	userService "github.com/hireassist/backend/internal/user/service"
	appValidation "github.com/hireassist/backend/internal/validation"
)

// RegisterInput contains the input data for user registration.
type RegisterInput struct {
	Profile  appValidation.ProfileInput
	Settings appValidation.SettingsInput
	Request  domain.RequestContext
}

// RegisterOutput is the result of a successful registration. The user's
// profile is returned decrypted.
type RegisterOutput struct {
	User      *domain.UserRecord
	Token     string
	ExpiresAt time.Time
	Session   *domain.SessionRecord
}

// ValidateSessionOutput is the result of a successful session validation.
type ValidateSessionOutput struct {
	User      *domain.UserRecord
	Session   *domain.SessionRecord
	Payload   *authDomain.TokenPayload
	Remaining time.Duration
}

// Directory defines the interface for user directory operations.
type Directory interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	GetByID(ctx context.Context, userID string) (*domain.UserRecord, error)
	UpdateProfile(ctx context.Context, userID string, input appValidation.ProfileInput) (*domain.UserRecord, error)
	UpdateSettings(ctx context.Context, userID string, input appValidation.SettingsInput) (*domain.Settings, error)
	ValidateSession(ctx context.Context, token, expectedUserID string) (*ValidateSessionOutput, error)
	DeleteUser(ctx context.Context, userID string) error
	Stats(ctx context.Context) (*domain.Stats, error)
}

// UserRepository defines user record persistence operations.
type UserRepository interface {
	Get(ctx context.Context, id string) (*domain.UserRecord, error)
	Save(ctx context.Context, record *domain.UserRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.UserRecord, error)
}

// SessionRepository defines session record persistence operations.
type SessionRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.SessionRecord, error)
	Save(ctx context.Context, record *domain.SessionRecord) error
	Delete(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) (int, error)
	List(ctx context.Context) ([]*domain.SessionRecord, error)
}

const (
	activeSessionWindow = time.Hour
	recentUserWindow    = 24 * time.Hour
)

// UserDirectory handles user directory business logic.
type UserDirectory struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	tokens      authService.TokenService
	fieldCrypto *userService.FieldCrypto
	logger      *slog.Logger
	now         func() time.Time
}

// NewUserDirectory creates a new UserDirectory.
func NewUserDirectory(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokens authService.TokenService,
	fieldCrypto *userService.FieldCrypto,
	logger *slog.Logger,
) Directory {
	return &UserDirectory{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		fieldCrypto: fieldCrypto,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new user with a fresh ID, encrypts the sensitive
// profile fields, merges the supplied settings over the defaults, mints a
// session token, and stores the user and session records.
func (d *UserDirectory) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	profileInput, err := appValidation.ValidateProfile(input.Profile)
	if err != nil {
		return nil, err
	}
	settingsInput, err := appValidation.ValidateSettings(input.Settings)
	if err != nil {
		return nil, err
	}

	userID, err := cryptoService.RandomUserID()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate user id")
	}

	now := d.now()
	settings := domain.DefaultSettings()
	settings.CreatedAt = now
	applySettings(&settings, settingsInput, now)

	record := &domain.UserRecord{
		ID:         userID,
		CreatedAt:  now,
		LastActive: now,
		LastLogin:  now,
		Profile:    d.fieldCrypto.EncryptProfile(profileToValues(profileInput)),
		Settings:   settings,
		Resumes:    []string{},
		Metadata: domain.Metadata{
			RegistrationIP: input.Request.IP,
			UserAgent:      input.Request.UserAgent,
			Fingerprint: cryptoService.Fingerprint(
				input.Request.UserAgent, input.Request.IP, input.Request.Language),
		},
	}

	token, payload, err := d.tokens.Mint(userID)
	if err != nil {
		return nil, err
	}

	session := &domain.SessionRecord{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		Token:       token,
		CreatedAt:   now,
		LastUsed:    now,
		Fingerprint: record.Metadata.Fingerprint,
		IP:          input.Request.IP,
	}

	if err := d.userRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	if err := d.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	d.logger.InfoContext(ctx, "user registered", slog.String("user_id", userID))

	return &RegisterOutput{
		User:      d.withDecryptedProfile(record),
		Token:     token,
		ExpiresAt: payload.ExpiresAt(),
		Session:   session,
	}, nil
}

// GetByID retrieves a user, touches its last-active timestamp, and returns
// it with the profile decrypted.
func (d *UserDirectory) GetByID(ctx context.Context, userID string) (*domain.UserRecord, error) {
	record, err := d.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	record.LastActive = d.now()
	if err := d.userRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return d.withDecryptedProfile(record), nil
}

// UpdateProfile merges the supplied fields into the stored profile. Only
// supplied fields change; sensitive ones are encrypted before the merge and
// an update timestamp is stamped into the profile.
func (d *UserDirectory) UpdateProfile(
	ctx context.Context,
	userID string,
	input appValidation.ProfileInput,
) (*domain.UserRecord, error) {
	profileInput, err := appValidation.ValidateProfile(input)
	if err != nil {
		return nil, err
	}

	record, err := d.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := d.now()
	incoming := d.fieldCrypto.EncryptProfile(profileToValues(profileInput))

	if record.Profile == nil {
		record.Profile = domain.Profile{}
	}
	for field, value := range incoming {
		record.Profile[field] = value
	}
	record.Profile[domain.ProfileUpdatedAtKey] = cryptoDomain.PlainText(now.Format(time.RFC3339))
	record.LastActive = now

	if err := d.userRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return d.withDecryptedProfile(record), nil
}

// UpdateSettings merges the supplied options into the stored settings.
// Unsupplied options are left untouched.
func (d *UserDirectory) UpdateSettings(
	ctx context.Context,
	userID string,
	input appValidation.SettingsInput,
) (*domain.Settings, error) {
	settingsInput, err := appValidation.ValidateSettings(input)
	if err != nil {
		return nil, err
	}

	record, err := d.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := d.now()
	applySettings(&record.Settings, settingsInput, now)
	record.LastActive = now

	if err := d.userRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	settings := record.Settings
	return &settings, nil
}

// ValidateSession verifies the token cryptographically, resolves the
// server-side session record, touches its last-used timestamp, and returns
// the session together with its user. A valid token whose session record
// was deleted fails with ErrSessionNotFound.
func (d *UserDirectory) ValidateSession(
	ctx context.Context,
	token, expectedUserID string,
) (*ValidateSessionOutput, error) {
	result, err := d.tokens.Verify(token, expectedUserID)
	if err != nil {
		return nil, err
	}

	session, err := d.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := d.now()
	session.LastUsed = now
	if err := d.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	record, err := d.userRepo.Get(ctx, session.UserID)
	if err != nil {
		// The user vanished under a live session record. Treat it the
		// same as a revoked session.
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, authDomain.ErrSessionNotFound
		}
		return nil, err
	}

	record.LastActive = now
	if err := d.userRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return &ValidateSessionOutput{
		User:      d.withDecryptedProfile(record),
		Session:   session,
		Payload:   result.Payload,
		Remaining: result.Remaining,
	}, nil
}

// DeleteUser removes the user record and every session owned by it.
func (d *UserDirectory) DeleteUser(ctx context.Context, userID string) error {
	if _, err := d.userRepo.Get(ctx, userID); err != nil {
		return err
	}

	if err := d.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	deleted, err := d.sessionRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "user deleted",
		slog.String("user_id", userID),
		slog.Int("sessions_deleted", deleted),
	)
	return nil
}

// Stats counts users and sessions, flagging sessions used in the last hour
// and users active in the last day.
func (d *UserDirectory) Stats(ctx context.Context) (*domain.Stats, error) {
	users, err := d.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := d.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := d.now()
	stats := &domain.Stats{
		TotalUsers:    len(users),
		TotalSessions: len(sessions),
		Timestamp:     now,
	}
	for _, session := range sessions {
		if now.Sub(session.LastUsed) < activeSessionWindow {
			stats.ActiveSessions++
		}
	}
	for _, user := range users {
		if now.Sub(user.LastActive) < recentUserWindow {
			stats.RecentUsers++
		}
	}
	return stats, nil
}

// withDecryptedProfile returns a copy of the record with its profile
// decrypted for API responses. The stored record keeps its encrypted form.
func (d *UserDirectory) withDecryptedProfile(record *domain.UserRecord) *domain.UserRecord {
	out := *record
	out.Profile = d.fieldCrypto.DecryptProfile(record.Profile)
	return &out
}

// profileToValues builds a profile map from the sanitized input fields that
// were actually supplied.
func profileToValues(input appValidation.ProfileInput) domain.Profile {
	profile := domain.Profile{}
	if input.FullName != nil {
		profile["fullName"] = cryptoDomain.PlainText(*input.FullName)
	}
	if input.Email != nil {
		profile["email"] = cryptoDomain.PlainText(*input.Email)
	}
	if input.Phone != nil {
		profile["phone"] = cryptoDomain.PlainText(*input.Phone)
	}
	if input.LinkedIn != nil {
		profile["linkedin"] = cryptoDomain.PlainText(*input.LinkedIn)
	}
	return profile
}

// applySettings merges supplied options into settings and stamps the update
// time.
func applySettings(settings *domain.Settings, input appValidation.SettingsInput, now time.Time) {
	if input.BackendURL != nil {
		settings.BackendURL = *input.BackendURL
	}
	if input.AutoFill != nil {
		settings.AutoFill = *input.AutoFill
	}
	if input.SmartSuggestions != nil {
		settings.SmartSuggestions = *input.SmartSuggestions
	}
	if input.Notifications != nil {
		settings.Notifications = *input.Notifications
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Privacy != nil {
		if input.Privacy.ShareData != nil {
			settings.Privacy.ShareData = *input.Privacy.ShareData
		}
		if input.Privacy.Analytics != nil {
			settings.Privacy.Analytics = *input.Privacy.Analytics
		}
	}
	updated := now
	settings.UpdatedAt = &updated
}
