package middleware

import (
	"strings"

	"artisanconnect/config"
	"artisanconnect/internal/delivery/api/response"
	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/constants"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie (or a Bearer token) to the requester.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := constants.SessionCookieName
	if cfg != nil && cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Authenticate rejects requests without a valid session with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		userID, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// Identify attaches the requester when a valid session is present and never rejects.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := m.sessionToken(c); token != "" {
			if userID, err := m.sessions.Authenticate(c.Request().Context(), token); err == nil {
				deliverycontext.SetUserID(c, userID)
			}
		}

		return next(c)
	}
}

// sessionToken prefers the session cookie over the Authorization header.
func (m *AuthMiddleware) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// GetUserID returns the requester set by Authenticate or Identify.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
