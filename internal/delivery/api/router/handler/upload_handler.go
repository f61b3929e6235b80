package handler

import (
	"net/http"

	"eshop/internal/domain/service"
	"eshop/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	ImageStorage service.ImageStorage
}

// UploadHandler streams stored product images.
type UploadHandler struct {
	imageStorage service.ImageStorage
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{imageStorage: params.ImageStorage}
}

// ServeUpload handles GET /public/uploads/*
func (h *UploadHandler) ServeUpload(c echo.Context) error {
	key := storage.KeyPrefix + c.Param("*")

	body, contentType, err := h.imageStorage.Open(c.Request().Context(), key)
	if err != nil {
		return err
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, body)
}
