package service

import "context"

// VerifiedIdentity is a user identity asserted by an external identity provider.
type VerifiedIdentity struct {
	UID           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// IdentityVerifier verifies ID tokens issued by an external identity provider.
type IdentityVerifier interface {
	// Verify checks the ID token and returns the identity it asserts.
	Verify(ctx context.Context, idToken string) (*VerifiedIdentity, error)
}
