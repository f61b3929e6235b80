// Package context carries per-request values (request id, scoped logger)
// between echo middleware, handlers and the usecases they call.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey string

const (
	requestIDKey scopeKey = "eshop.request_id"
	loggerKey    scopeKey = "eshop.logger"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores id on the echo context for handlers and the error
// middleware.
func SetRequestID(c echo.Context, id string) {
	c.Set(string(requestIDKey), id)
}

// GetRequestID returns the id assigned by the request id middleware. Routes
// reached without it get a fresh id so error bodies always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(requestIDKey)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault prefers the request-scoped logger, which already has
// request_id attached, over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
