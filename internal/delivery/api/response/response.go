package response

import (
	"net/http"

	deliverycontext "eshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of mutations that return no entity.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code,omitempty"`    // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Only for 4xx errors other than 401/403
	RequestID string `json:"requestId,omitempty"`
}

// Message returns {success: true, message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{
		Success: true,
		Message: message,
	})
}

// Error returns {success: false, message, code}.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
