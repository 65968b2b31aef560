package repository

import (
	"context"
	"errors"

	"artisanconnect/internal/domain/entity"
)

var (
	ErrCredentialNotFound      = errors.New("credential not found")
	ErrCredentialAlreadyExists = errors.New("credential already exists")
)

// CredentialRepository persists email/password credentials.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	Create(ctx context.Context, credential *entity.Credential) error
}
