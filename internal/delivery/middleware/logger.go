package middleware

import (
	"log/slog"
	"time"

	"eshop/config"
	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/util"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes an access line per request. It is a no-op unless
// env.debug is set.
type LoggerMiddleware struct {
	logger  *slog.Logger
	enabled bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, enabled: cfg.Env.Debug}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		began := time.Now()

		// Render errors here so the logged status is the one sent.
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.access(c, time.Since(began), err)

		return nil
	}
}

func (m *LoggerMiddleware) access(c echo.Context, took time.Duration, err error) {
	req, res := c.Request(), c.Response()
	ctx := req.Context()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.String("sent", util.FormatBytes(res.Size)),
		slog.Duration("took", took),
		slog.String("ip", c.RealIP()),
	}
	if q := req.URL.RawQuery; q != "" {
		attrs = append(attrs, slog.String("query", util.Truncate(q, 256)))
	}
	if userID, ok := GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP request", attrs...)
}
