package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, strictTransport bool) http.Header {
	e := echo.New()
	handler := SecurityHeaders(strictTransport)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/tracker/transactions", nil)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Header()
}

func TestSecurityHeaders(t *testing.T) {
	headers := serveWithSecurityHeaders(t, true)

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=(), microphone=(), camera=()", headers.Get("Permissions-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "no-store, private", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
}

func TestSecurityHeaders_NoHSTSInDevelopment(t *testing.T) {
	headers := serveWithSecurityHeaders(t, false)

	assert.Empty(t, headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
}

func TestSecurityHeaders_NextHandlerCalled(t *testing.T) {
	e := echo.New()

	nextCalled := false
	handler := SecurityHeaders(false)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.True(t, nextCalled, "Next handler should be called")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
