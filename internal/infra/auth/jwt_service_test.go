package auth

import (
	"testing"
	"time"

	"artisanconnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.GenerateSessionToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID())
	assert.Equal(t, "artisanconnect", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse session token")
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_for_signing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret_key_for_verifying"))
	require.NoError(t, err)

	token, err := issuer.GenerateSessionToken("user-123")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-48 * time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := impl.GenerateSessionToken("user-123")
	require.NoError(t, err)

	impl.now = time.Now
	claims, err := impl.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func TestJWTService_SessionDuration(t *testing.T) {
	cfg := newTestConfig("test_session_secret_key_very_long_for_testing")

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.SessionDuration())

	cfg.Session = &config.SessionConfig{TTL: 2 * time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.SessionDuration())
}

func TestJWTService_EmptyUserID(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = svc.GenerateSessionToken("")
	assert.Error(t, err)
}
