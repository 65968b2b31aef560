// Package service defines the ports the use cases depend on: credentials,
// content generation, image storage and event publishing.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PasswordHasher hashes and verifies email/password credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}

// SessionClaims are the claims carried by a session token. The subject is the user ID.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// UserID returns the user the session belongs to.
func (c *SessionClaims) UserID() string {
	return c.Subject
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for the user.
	GenerateSessionToken(userID string) (string, error)

	// ValidateToken checks the signature and expiry of a session token.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured lifetime of a session.
	SessionDuration() time.Duration
}
