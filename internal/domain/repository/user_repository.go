// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user when the ID is unknown. Otherwise it merges the
	// non-empty fields into the stored user, refreshes UpdatedAt and keeps CreatedAt.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
}
