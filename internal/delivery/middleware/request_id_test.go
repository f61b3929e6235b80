package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "eshop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses client id", incoming: "checkout-42", keep: true},
		{name: "generates when missing"},
		{name: "rejects oversized", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "rejects whitespace", incoming: "two words"},
		{name: "rejects control characters", incoming: "id\x1b[31m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			var fromEcho, fromCtx string
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				ctx := c.Request().Context()
				fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, fromEcho)
			assert.Equal(t, got, fromCtx)
			assert.Contains(t, logs.String(), "request_id="+got)
		})
	}
}
