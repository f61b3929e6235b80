// Package handler contains the echo handlers of the REST API.
package handler

import (
	"net/http"
	"strings"

	domainerrors "eshop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// paramID parses the named path parameter as an entity id.
func paramID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " must be a valid id")
	}

	return id, nil
}

// bindAndValidate decodes the body into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// baseURL is the origin used in links to stored images. The configured
// public URL wins over the request's own scheme and host.
func baseURL(c echo.Context, publicBaseURL string) string {
	if publicBaseURL != "" {
		return strings.TrimRight(publicBaseURL, "/")
	}

	return c.Scheme() + "://" + c.Request().Host
}
