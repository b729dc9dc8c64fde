package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord is the server-side bookkeeping for one minted token. Many
// sessions may reference one user; each session maps 1:1 to one token.
// Deleting the record is the only way to revoke a still-valid token.
type SessionRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Token       string    `json:"token"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUsed    time.Time `json:"lastUsed"`
	Fingerprint string    `json:"fingerprint"`
	IP          string    `json:"ip"`
}
