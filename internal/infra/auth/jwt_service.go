// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"artisanconnect/config"
	"artisanconnect/internal/domain/service"
)

const (
	defaultSessionTTL = 24 * time.Hour
	sessionIssuer     = "artisanconnect"
)

// jwtService is a concrete implementation of the TokenService interface using HS256-signed JWTs.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateSessionToken creates a signed session token whose subject is the user ID.
func (s *jwtService) GenerateSessionToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := s.now()
	claims := &service.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the signature, issuer and expiry of a session token.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// SessionDuration returns the configured lifetime of a session.
func (s *jwtService) SessionDuration() time.Duration {
	return s.ttl
}
