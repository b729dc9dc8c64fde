// Package domain defines the session token model and its failure modes.
package domain

import (
	"time"

	apperrors "github.com/hireassist/backend/internal/errors"
)

// TokenPayload is the signed content of a session token. Times are unix
// milliseconds to stay byte-compatible with tokens already held by clients.
type TokenPayload struct {
	UserID  string `json:"userId"`
	Issued  int64  `json:"issued"`
	Expires int64  `json:"expires"`
	Random  string `json:"random"`
}

// IssuedAt returns the issue time as a time.Time.
func (p *TokenPayload) IssuedAt() time.Time {
	return time.UnixMilli(p.Issued)
}

// ExpiresAt returns the expiry time as a time.Time.
func (p *TokenPayload) ExpiresAt() time.Time {
	return time.UnixMilli(p.Expires)
}

// VerifyResult is returned on successful token verification.
type VerifyResult struct {
	Payload   *TokenPayload
	Remaining time.Duration
}

// Token verification failures. All of them wrap ErrUnauthorized: the HTTP
// layer must render every one of them as the same generic invalid-session
// response so an attacker learns nothing about why a forgery failed.
// Internal logs carry the specific reason.
var (
	// ErrMalformedToken indicates the token is not <payload>.<signature> or
	// the payload segment does not decode.
	ErrMalformedToken = apperrors.Wrap(apperrors.ErrUnauthorized, "malformed token")

	// ErrInvalidSignature indicates the recomputed HMAC does not match the
	// supplied signature.
	ErrInvalidSignature = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the token's expiry time has passed.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")

	// ErrUserMismatch indicates the token belongs to a different user than
	// the caller claimed.
	ErrUserMismatch = apperrors.Wrap(apperrors.ErrUnauthorized, "token user mismatch")

	// ErrSessionNotFound indicates a cryptographically valid token whose
	// server-side session record no longer exists. Deleting the session
	// record is the only revocation mechanism available.
	ErrSessionNotFound = apperrors.Wrap(apperrors.ErrUnauthorized, "session not found")
)
