package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.Response().Header().Set(HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "from-middleware")
	assert.Equal(t, "from-middleware", GetRequestID(c))
}

func TestSetUserID_EnrichesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	c := e.NewContext(req, httptest.NewRecorder())

	SetUserID(c, "user-7")

	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "user-7", id)

	GetLogger(c.Request().Context()).Info("hello")
	assert.Contains(t, buf.String(), "user_id=user-7")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
