package auth

import (
	"context"
	"time"
)

// TokenService defines operations for signing and verifying the bearer
// tokens that carry a user's identity between requests.
type TokenService interface {
	// Sign creates a signed token asserting the given identity.
	// Returns the compact token string or an error if signing fails.
	Sign(ctx context.Context, username string, isAdmin bool) (string, error)

	// Verify checks the provided token string against the process-wide
	// secret and extracts the identity claims. Returns ErrExpiredToken for
	// an elapsed expiry and ErrInvalidToken for every other failure
	// (malformed encoding, bad signature, unexpected signing method).
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a verified token. It is produced only
// by successful verification and never constructed from untrusted input
// directly.
type Claims struct {
	// Username is the identity the token was issued for.
	Username string `json:"username"`

	// IsAdmin marks identities that hold the admin capability.
	IsAdmin bool `json:"isAdmin"`

	// IssuedAt records when the token was signed.
	IssuedAt time.Time `json:"iat,omitempty"`

	// ExpiresAt records when the token stops being accepted.
	ExpiresAt time.Time `json:"exp,omitempty"`
}
