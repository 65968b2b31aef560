package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for storing the authenticated requester in context.
const KeyUserID ContextKey = "user_id"

// SetUserID records the authenticated requester on the echo context and the
// request context. The request-scoped logger gains a user_id attribute.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)

	ctx := WithUserID(c.Request().Context(), userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated requester ID, if any.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(KeyUserID)).(string)

	return id, ok && id != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}
