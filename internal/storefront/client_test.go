package storefront

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"eshop/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /shop/v2/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"productList":[
			{"id":"p1","name":"Rope Chain","brand":"Golden Burma","description":"22k gold","price":890,
			 "category":{"id":"c1","name":"Chains"},"countInStock":5,"isFeatured":true},
			{"id":"p2","name":"Signet Ring","brand":"Yangon Silverworks","description":"Engravable","price":140.5,
			 "category":{"id":"c2","name":"Rings"},"countInStock":10}
		]}`)
	})
	mux.HandleFunc("GET /shop/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"c1","name":"Chains","icon":"x","color":"y"},{"id":"c2","name":"Rings"}]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "shop/v2/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Products(t *testing.T) {
	srv := newTestBackend(t)

	products, err := newTestClient(srv.URL).Products(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, catalog.ID("p1"), products[0].ID)
	assert.Equal(t, catalog.ID("c1"), products[0].Category)
	assert.Equal(t, "140.50", products[1].Price.StringFixed(2))

	chains := slices.Collect(catalog.ByCategory(products, "c1"))
	require.Len(t, chains, 1)
	assert.Equal(t, "Rope Chain", chains[0].Name)
}

func TestClient_CategoriesAreStyled(t *testing.T) {
	srv := newTestBackend(t)

	categories, err := newTestClient(srv.URL + "/").Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []catalog.Category{
		{ID: "c1", Name: "Chains", Icon: "link-outline", Color: "#2E7D32"},
		{ID: "c2", Name: "Rings", Icon: "radio-button-on-outline", Color: "#E8B4B8"},
	}, categories)
}

func TestClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"success":false,"message":"Internal server error","code":"INTERNAL_ERROR"}`)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv.URL).Products(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}

func TestRenderProducts(t *testing.T) {
	products := []catalog.Product{
		{Name: "Rope Chain", Brand: "Golden Burma", Description: "Twisted rope chain in 22k gold, fifty centimetres long", IsFeatured: true},
		{Name: "Box Chain", Brand: "Yangon Silverworks", Description: "Silver"},
	}

	var buf bytes.Buffer
	n, err := RenderProducts(&buf, catalog.Search(products, "chain"))
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "Rope Chain *")
	assert.Contains(t, lines[1], "0.00")
	assert.Contains(t, lines[1], "...")
}

func TestRenderProducts_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := RenderProducts(&buf, catalog.Search(nil, "  "))

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRenderProduct(t *testing.T) {
	p := catalog.Product{
		Name:         "Signet",
		Brand:        "Yangon Silverworks",
		Price:        decimal.RequireFromString("120.5"),
		Category:     "rings",
		CountInStock: 3,
		Rating:       4.5,
		NumReviews:   12,
		Description:  "Engravable ring",
	}

	var buf bytes.Buffer
	require.NoError(t, RenderProduct(&buf, p))
	out := buf.String()
	assert.Contains(t, out, "$120.50")
	assert.Contains(t, out, "3 available")
	assert.Contains(t, out, "4.5 (12 reviews)")
	assert.NotContains(t, out, "Details:")

	buf.Reset()
	p.CountInStock, p.NumReviews = 0, 0
	require.NoError(t, RenderProduct(&buf, p))
	assert.Contains(t, buf.String(), "out of stock")
	assert.NotContains(t, buf.String(), "Rating:")
}
