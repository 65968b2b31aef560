// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"artisanconnect/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an email/password login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput carries the signed session token issued after a credential exchange.
type SessionOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// SessionUsecase exchanges credentials for a session.
// The first login with an unknown email registers the account.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	LoginWithIdentityToken(ctx context.Context, idToken string) (*SessionOutput, error)
	// Authenticate resolves a session token to the requester's user ID.
	Authenticate(ctx context.Context, token string) (string, error)
}
