// Package response writes the JSON bodies of the HTTP API.
// Successful responses are the bare payload; errors share one shape.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "artisanconnect/internal/delivery/context"
	domainerrors "artisanconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Field errors or context (4xx only)
	RequestID string `json:"requestId"`         // Request tracking ID
}

// MessageResponse is the body of operations that return only a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success returns the payload as the response body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message returns a {message} body
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors as HTTP responses. Other errors are
// returned so the centralized error handler can log them and answer 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).Error("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details(appErr))
}

func details(appErr domainerrors.AppError) any {
	var validationErr *domainerrors.ValidationError
	if errors.As(appErr, &validationErr) {
		return validationErr.Fields()
	}

	if appErr.Details() != "" {
		return appErr.Details()
	}

	return nil
}
