package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/domain/service"
	"artisanconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	identities   service.IdentityVerifier
	logger       *slog.Logger
	now          func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	identities service.IdentityVerifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		identities:   identities,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies an email/password pair. An unknown email is registered with
// the given password inside one transaction, together with its user.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	fields := map[string]string{}
	if email == "" {
		fields["email"] = "is required"
	}
	if input.Password == "" {
		fields["password"] = "is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	var user *entity.User
	registered := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()
		userRepo := repoFactory.NewUserRepository()

		credential, err := credentialRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			if !srv.hasher.Check(input.Password, credential.PasswordHash) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
			}

			user, err = userRepo.FindByID(ctx, credential.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(domainerrors.ErrInvalidCredentials, "credential without user")
				}

				return errors.Wrap(err, "failed to find user")
			}

			return nil

		case errors.Is(err, repository.ErrCredentialNotFound):
			user, err = srv.register(ctx, userRepo, credentialRepo, email, input.Password)
			registered = err == nil

			return err

		default:
			return errors.Wrap(err, "failed to find credential")
		}
	})
	if err != nil {
		return nil, err
	}

	if registered {
		srv.log(ctx).Info("User registered on first login", slog.String("user_id", user.ID))
	}

	return srv.issue(user)
}

func (srv *sessionService) register(
	ctx context.Context,
	userRepo repository.UserRepository,
	credentialRepo repository.CredentialRepository,
	email, password string,
) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now().UTC()
	user, err := userRepo.Upsert(ctx, &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	err = credentialRepo.Create(ctx, &entity.Credential{
		UserID:       user.ID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCredentialAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "credential registered concurrently")
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}

	return user, nil
}

// LoginWithIdentityToken exchanges a verified identity provider token for a session.
// The user is keyed by the provider uid and refreshed from the token claims.
func (srv *sessionService) LoginWithIdentityToken(ctx context.Context, idToken string) (*usecase.SessionOutput, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"idToken": "is required"})
	}

	identity, err := srv.identities.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	firstName, lastName := splitName(identity.Name)
	now := srv.now().UTC()

	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		ID:              identity.UID,
		Email:           strings.ToLower(identity.Email),
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: identity.Picture,
		IsVerified:      identity.EmailVerified,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	srv.log(ctx).Info("Identity token exchanged", slog.String("user_id", user.ID))

	return srv.issue(user)
}

// Authenticate resolves a session token to its user ID.
func (srv *sessionService) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	if claims.UserID() == "" {
		return "", errors.Wrap(domainerrors.ErrUnauthenticated, "session without subject")
	}

	return claims.UserID(), nil
}

func (srv *sessionService) issue(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SessionOutput{
		User:      user,
		Token:     token,
		ExpiresAt: srv.now().Add(srv.tokenService.SessionDuration()),
	}, nil
}

// splitName splits a display name into the first word and the rest.
func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")

	return first, strings.TrimSpace(last)
}
