// Package storefront reads the public catalog of a running shop backend and
// renders it for the terminal.
package storefront

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eshop/config"
	"eshop/internal/catalog"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 15 * time.Second

// Client calls the unauthenticated catalog routes.
type Client struct {
	baseURL    string
	apiRoot    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client for the backend at baseURL, e.g.
// http://localhost:3000, with routes mounted under apiRoot.
func NewClient(baseURL, apiRoot string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiRoot: config.NormalizeAPIRoot(apiRoot),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

type apiCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiProduct struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	RichDescription string          `json:"richDescription"`
	Brand           string          `json:"brand"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	Category        *apiCategory    `json:"category"`
	CountInStock    int             `json:"countInStock"`
	Rating          float64         `json:"rating"`
	NumReviews      int             `json:"numReviews"`
	IsFeatured      bool            `json:"isFeatured"`
}

func (p *apiProduct) toCatalog() catalog.Product {
	product := catalog.Product{
		ID:              catalog.ID(p.ID),
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Brand:           p.Brand,
		Image:           p.Image,
		Price:           p.Price,
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
	}
	if p.Category != nil {
		product.Category = catalog.ID(p.Category.ID)
	}

	return product
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Products fetches every product.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var body struct {
		ProductList []*apiProduct `json:"productList"`
	}
	if err := c.get(ctx, "/products", &body); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(body.ProductList))
	for _, p := range body.ProductList {
		products = append(products, p.toCatalog())
	}

	return products, nil
}

// Categories fetches every category, styled for display.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var body []*apiCategory
	if err := c.get(ctx, "/categories", &body); err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, 0, len(body))
	for _, cat := range body {
		categories = append(categories, catalog.Category{ID: catalog.ID(cat.ID), Name: cat.Name})
	}

	return catalog.Styled(categories), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + c.apiRoot + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", url)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Catalog request",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || eb.Message == "" {
			return errors.Errorf("GET %s: %s", url, resp.Status)
		}

		return errors.Errorf("GET %s: %s (%d %s)", url, eb.Message, resp.StatusCode, eb.Code)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", url)
	}

	return nil
}
