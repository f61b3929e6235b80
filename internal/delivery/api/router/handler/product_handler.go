package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"eshop/config"
	"eshop/internal/delivery/api/response"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog, its images and QR codes.
type ProductHandler struct {
	productUC     usecase.ProductUsecase
	publicBaseURL string
	logger        *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:     params.ProductUC,
		publicBaseURL: params.Config.API.PublicBaseURL,
		logger:        params.Logger,
	}
}

// ProductRequest carries the editable product fields. Create sends it as
// multipart form fields next to the image, update as JSON.
type ProductRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	RichDescription string          `json:"richDescription"`
	Image           string          `json:"image"`
	Brand           string          `json:"brand"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category" validate:"required,uuid"`
	CountInStock    int             `json:"countInStock" validate:"gte=0,lte=255"`
	Rating          float64         `json:"rating" validate:"gte=0"`
	NumReviews      int             `json:"numReviews" validate:"gte=0"`
	IsFeatured      bool            `json:"isFeatured"`
}

func (r *ProductRequest) toInput() (*usecase.ProductInput, error) {
	if r.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	categoryID, err := uuid.Parse(r.Category)
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WithDetails("category must be a valid id")
	}

	return &usecase.ProductInput{
		Name:            r.Name,
		Description:     r.Description,
		RichDescription: r.RichDescription,
		Image:           r.Image,
		Brand:           r.Brand,
		Price:           r.Price,
		CategoryID:      categoryID,
		CountInStock:    r.CountInStock,
		Rating:          r.Rating,
		NumReviews:      r.NumReviews,
		IsFeatured:      r.IsFeatured,
	}, nil
}

// productRequestFromForm reads the product fields of a multipart request.
func productRequestFromForm(c echo.Context) (*ProductRequest, error) {
	req := &ProductRequest{
		Name:            c.FormValue("name"),
		Description:     c.FormValue("description"),
		RichDescription: c.FormValue("richDescription"),
		Brand:           c.FormValue("brand"),
		Category:        c.FormValue("category"),
	}

	var err error
	if v := c.FormValue("price"); v != "" {
		if req.Price, err = decimal.NewFromString(v); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a number")
		}
	}
	if v := c.FormValue("countInStock"); v != "" {
		if req.CountInStock, err = strconv.Atoi(v); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("countInStock must be an integer")
		}
	}
	if v := c.FormValue("rating"); v != "" {
		if req.Rating, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be a number")
		}
	}
	if v := c.FormValue("numReviews"); v != "" {
		if req.NumReviews, err = strconv.Atoi(v); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("numReviews must be an integer")
		}
	}
	if v := c.FormValue("isFeatured"); v != "" {
		if req.IsFeatured, err = strconv.ParseBool(v); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("isFeatured must be a boolean")
		}
	}

	if err := c.Validate(req); err != nil {
		return nil, errors.WithStack(err)
	}

	return req, nil
}

// ListProducts handles GET /products?categories=<id,id>
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var categoryIDs []uuid.UUID
	if raw := c.QueryParam("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return domainerrors.ErrInvalidID.WithDetails("categories must be a comma separated list of ids")
			}
			categoryIDs = append(categoryIDs, id)
		}
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), categoryIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "productList": products})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles the multipart POST /products with an "image" file.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	req, err := productRequestFromForm(c)
	if err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	product, err := h.productUC.CreateProduct(c.Request().Context(), input,
		&usecase.ImageUpload{Name: header.Filename, File: file}, baseURL(c, h.publicBaseURL))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id with a JSON body.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "product": product})
}

// UpdateGallery handles the multipart PUT /products/gallery-images/:id with "images" files.
func (h *ProductHandler) UpdateGallery(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("images must be sent as multipart form data")
	}

	headers := form.File["images"]
	uploads := make([]*usecase.ImageUpload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open uploaded image %s", header.Filename)
		}
		files = append(files, file)
		uploads = append(uploads, &usecase.ImageUpload{Name: header.Filename, File: file})
	}

	product, err := h.productUC.UpdateGallery(c.Request().Context(), id, uploads, baseURL(c, h.publicBaseURL))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// CountProducts handles GET /products/get/count
func (h *ProductHandler) CountProducts(c echo.Context) error {
	count, err := h.productUC.CountProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "productCount": count})
}

// FeaturedProducts handles GET /products/get/featured/:count
func (h *ProductHandler) FeaturedProducts(c echo.Context) error {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("count must be an integer")
	}

	products, err := h.productUC.FeaturedProducts(c.Request().Context(), count)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "products": products})
}

// ProductQRCode handles GET /products/:id/qr
func (h *ProductHandler) ProductQRCode(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.productUC.ProductQRCode(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
