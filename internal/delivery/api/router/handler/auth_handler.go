package handler

import (
	"log/slog"
	"net/http"
	"time"

	"artisanconnect/config"
	"artisanconnect/internal/delivery/api/middleware"
	"artisanconnect/internal/delivery/api/response"
	deliverycontext "artisanconnect/internal/delivery/context"
	"artisanconnect/internal/domain/constants"
	"artisanconnect/internal/domain/entity"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler serves login, logout and the requester's profile.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	profileUC usecase.ProfileUsecase
	session   config.SessionConfig
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		sessionUC: params.SessionUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Session != nil {
		h.session = *params.Config.Session
	}

	return h
}

// LoginRequest represents the request body for email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// FirebaseLoginRequest carries a Firebase ID token
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// UpdateProfileRequest represents the request body for a profile update
type UpdateProfileRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	FirstName       string `json:"firstName" validate:"max=100"`
	LastName        string `json:"lastName" validate:"max=100"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url,max=2048"`
	Bio             string `json:"bio" validate:"max=5000"`
	Location        string `json:"location" validate:"max=255"`
}

// SessionResponse is returned by both login endpoints
type SessionResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

// LogoutResponse is returned after the session cookie is cleared
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login handles email/password login, registering unknown emails
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.startSession(c, out)
}

// FirebaseLogin exchanges a Firebase ID token for a session
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.sessionUC.LoginWithIdentityToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.startSession(c, out)
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.cookie("", time.Unix(0, 0).UTC())
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, LogoutResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GetUser returns the requester's profile
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile merges the given fields into the requester's profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		Location:        req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) startSession(c echo.Context, out *usecase.SessionOutput) error {
	c.SetCookie(h.cookie(out.Token, out.ExpiresAt))

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Session started",
		slog.String("user_id", out.User.ID),
	)

	return response.Success(c, http.StatusOK, SessionResponse{Success: true, User: out.User})
}

func (h *AuthHandler) cookie(value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.session.Secure {
		sameSite = http.SameSiteNoneMode
	}

	cookie := &http.Cookie{
		Name:     h.cookieName(),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: sameSite,
	}
	if value != "" && h.session.TTL > 0 {
		cookie.MaxAge = int(h.session.TTL.Seconds())
	}

	return cookie
}

func (h *AuthHandler) cookieName() string {
	if h.session.CookieName != "" {
		return h.session.CookieName
	}

	return constants.SessionCookieName
}
