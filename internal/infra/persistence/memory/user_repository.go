package memory

import (
	"context"
	"strings"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"
)

type userRepository struct {
	store *Store
	undo  *undoLog
}

// NewUserRepository returns a UserRepository over the store.
func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) Upsert(_ context.Context, user *entity.User) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, ok := s.users[user.ID]
	r.undo.recordUser(user.ID, existing)
	if !ok {
		created := cloneUser(user)
		created.CreatedAt = now
		created.UpdatedAt = now
		s.users[user.ID] = created

		return cloneUser(created), nil
	}

	existing.Merge(user)
	existing.UpdatedAt = now

	return cloneUser(existing), nil
}

type credentialRepository struct {
	store *Store
	undo  *undoLog
}

// NewCredentialRepository returns a CredentialRepository over the store.
func NewCredentialRepository(s *Store) repository.CredentialRepository {
	return &credentialRepository{store: s}
}

func (r *credentialRepository) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cred, ok := r.store.credentials[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}
	c := *cred

	return &c, nil
}

func (r *credentialRepository) Create(_ context.Context, credential *entity.Credential) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(credential.Email)
	if _, ok := s.credentials[key]; ok {
		return repository.ErrCredentialAlreadyExists
	}

	r.undo.recordCredential(key, nil)
	credential.Email = key
	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = s.now()
	}
	c := *credential
	s.credentials[key] = &c

	return nil
}
