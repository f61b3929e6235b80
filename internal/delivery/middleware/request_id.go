package middleware

import (
	"log/slog"

	deliverycontext "eshop/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id, echoes it back in
// X-Request-Id and hangs a logger carrying it on the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		id := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !usableRequestID(id) {
			id = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		scoped := m.logger.With(slog.String("request_id", id))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), id), scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// usableRequestID rejects empty, oversized or non-printable client ids so
// they cannot corrupt log lines or event attributes.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
