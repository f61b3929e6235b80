package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eshop/config"
	apimiddleware "eshop/internal/delivery/api/middleware"
	domainerrors "eshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedServer(debug bool) (*echo.Echo, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/items/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrProductNotFound
		}

		return c.String(http.StatusOK, "ok")
	})

	return e, &buf
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("disabled outside debug", func(t *testing.T) {
		e, buf := newLoggedServer(false)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("logs route and status", func(t *testing.T) {
		e, buf := newLoggedServer(true)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1?q=x", nil))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "route=/items/:id")
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, `query="q=x"`)
		assert.Contains(t, out, "request_id="+rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("error status is final", func(t *testing.T) {
		e, buf := newLoggedServer(true)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status=404")
	})
}
