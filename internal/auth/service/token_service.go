// Package service implements minting and verification of HMAC-signed
// session tokens.
package service

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	authDomain "github.com/hireassist/backend/internal/auth/domain"
	cryptoService "github.com/hireassist/backend/internal/crypto/service"
	apperrors "github.com/hireassist/backend/internal/errors"
)

// tokenNonceBytes is the size of the random component embedded in every
// payload so two tokens minted in the same millisecond still differ.
const tokenNonceBytes = 16

// TokenService mints and verifies session tokens. There is no revocation
// list: a minted token stays cryptographically valid until it expires, and
// the only server-side revocation is deleting its session record.
type TokenService interface {
	// Mint builds a signed token for the user. The wire format is
	// base64(json payload) + "." + base64url(hmac).
	Mint(userID string) (string, *authDomain.TokenPayload, error)

	// Verify checks a token and returns its payload and remaining validity.
	// When expectedUserID is non-empty the payload's user must match it.
	Verify(token, expectedUserID string) (*authDomain.VerifyResult, error)
}

// tokenService implements TokenService with an injected signer and clock.
type tokenService struct {
	signer   cryptoService.Signer
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenService creates a TokenService. lifetime is the fixed validity
// window applied to every minted token.
func NewTokenService(signer cryptoService.Signer, lifetime time.Duration) TokenService {
	return &tokenService{
		signer:   signer,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// NewTokenServiceWithClock creates a TokenService with a custom clock for
// tests that need to control expiry.
func NewTokenServiceWithClock(
	signer cryptoService.Signer,
	lifetime time.Duration,
	now func() time.Time,
) TokenService {
	return &tokenService{signer: signer, lifetime: lifetime, now: now}
}

// Mint builds the payload, signs its JSON serialization, and joins the two
// segments with a single dot.
func (t *tokenService) Mint(userID string) (string, *authDomain.TokenPayload, error) {
	nonce, err := cryptoService.RandomBytes(tokenNonceBytes)
	if err != nil {
		return "", nil, err
	}

	issued := t.now()
	payload := &authDomain.TokenPayload{
		UserID:  userID,
		Issued:  issued.UnixMilli(),
		Expires: issued.Add(t.lifetime).UnixMilli(),
		Random:  hex.EncodeToString(nonce),
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return "", nil, apperrors.Wrap(err, "failed to serialize token payload")
	}

	signature := t.signer.Sign(serialized)
	token := base64.StdEncoding.EncodeToString(serialized) + "." + signature

	return token, payload, nil
}

// Verify checks the token in a fixed order: shape, payload decode,
// signature, expiry, then the optional user match. The signature is
// recomputed over the exact decoded payload bytes, so any alteration of the
// payload segment fails the signature check rather than slipping through as
// a different failure.
func (t *tokenService) Verify(token, expectedUserID string) (*authDomain.VerifyResult, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, authDomain.ErrMalformedToken
	}

	serialized, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, authDomain.ErrMalformedToken
	}

	if !t.signer.Verify(serialized, parts[1]) {
		return nil, authDomain.ErrInvalidSignature
	}

	var payload authDomain.TokenPayload
	if err := json.Unmarshal(serialized, &payload); err != nil {
		return nil, authDomain.ErrMalformedToken
	}

	now := t.now()
	if now.After(payload.ExpiresAt()) {
		return nil, authDomain.ErrTokenExpired
	}

	if expectedUserID != "" && payload.UserID != expectedUserID {
		return nil, authDomain.ErrUserMismatch
	}

	return &authDomain.VerifyResult{
		Payload:   &payload,
		Remaining: payload.ExpiresAt().Sub(now),
	}, nil
}
