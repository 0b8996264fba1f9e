package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	middleware := SecurityHeaders()

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
}

func TestSecurityHeadersNextHandlerCalled(t *testing.T) {
	e := echo.New()

	nextCalled := false
	handler := SecurityHeaders()(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NoError(t, handler(c))
	assert.True(t, nextCalled, "Next handler should be called")
}

func TestSecurityHeadersHandlerCanOverrideCacheControl(t *testing.T) {
	e := echo.New()

	handler := SecurityHeaders()(func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "private, max-age=300")
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/charts/line", nil), rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, "private, max-age=300", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
