package auth

import (
	"context"
	"log/slog"

	"artisanconnect/config"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// idTokenVerifier is the subset of the Firebase auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier builds an IdentityVerifier backed by Firebase Authentication.
// When Firebase is not configured the returned verifier always fails with ErrIdentityProviderUnavailable.
func NewFirebaseVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase is not configured, identity token exchange disabled")

		return unavailableVerifier{}, nil
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	logger.Info("Firebase identity verifier initialized", slog.String("project_id", cfg.Firebase.ProjectID))

	return &firebaseVerifier{client: client}, nil
}

// Verify checks the Firebase ID token and maps its claims to a VerifiedIdentity.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage(err.Error())
	}

	identity := &service.VerifiedIdentity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}

type unavailableVerifier struct{}

func (unavailableVerifier) Verify(context.Context, string) (*service.VerifiedIdentity, error) {
	return nil, domainerrors.ErrIdentityProviderUnavailable
}
