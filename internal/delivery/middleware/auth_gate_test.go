package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eshop/config"
	apimiddleware "eshop/internal/delivery/api/middleware"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"
	mockSvc "eshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateTestServer(t *testing.T, tokenSvc service.TokenService, apiRoot string) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.API.Root = apiRoot

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(NewAuthGate(tokenSvc, cfg, logger).Handle)
	e.Any("/*", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.JSON(http.StatusOK, map[string]any{"userId": userID, "isAdmin": IsAdmin(c)})
	})

	return e
}

func serve(e *echo.Echo, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthGate_ExemptRequestsPassWithoutToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/products/get/featured/3"},
		{http.MethodOptions, "/api/v1/products"},
		{http.MethodGet, "/api/v1/categories"},
		{http.MethodGet, "/api/v1/categories/" + uuid.NewString()},
		{http.MethodGet, "/public/uploads/ring-1700000000000-ab12cd34.png"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/register"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAuthGate_ProtectedRequestsNeedToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/products"},
		{http.MethodPut, "/api/v1/products/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/categories/" + uuid.NewString()},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/login"},
		{http.MethodPost, "/api/v1/users/login/extra"},
		{http.MethodPost, "/public/uploads/x.png"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/v2/api/v1/products"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, "")

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "The user is not authorized", body["message"])
		})
	}
}

func TestAuthGate_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer"} {
		rec := serve(e, http.MethodGet, "/api/v1/orders", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthGate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired.jwt").Return(nil, domainerrors.ErrUnauthenticated)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	rec := serve(e, http.MethodGet, "/api/v1/orders", "Bearer expired.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGate_NonAdminTokenIsRevoked(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("customer.jwt").Return(&service.Claims{UserID: uuid.New(), IsAdmin: false}, nil)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	rec := serve(e, http.MethodGet, "/api/v1/orders", "Bearer customer.jwt")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The user is not authorized", body["message"])
	assert.Equal(t, "TOKEN_REVOKED", body["code"])
}

func TestAuthGate_AdminTokenPasses(t *testing.T) {
	adminID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("admin.jwt").Return(&service.Claims{UserID: adminID, IsAdmin: true}, nil)
	e := newGateTestServer(t, tokenSvc, "/api/v1")

	rec := serve(e, http.MethodDelete, "/api/v1/orders/"+uuid.NewString(), "bearer admin.jwt")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, adminID.String(), body["userId"])
	assert.Equal(t, true, body["isAdmin"])
}

func TestDefaultExemptRules_QuotesAPIRoot(t *testing.T) {
	gate := &AuthGate{rules: DefaultExemptRules("api.v1/")}

	assert.True(t, gate.Exempt(http.MethodGet, "/api.v1/products"))
	assert.False(t, gate.Exempt(http.MethodGet, "/apiXv1/products"))
	assert.True(t, gate.Exempt(http.MethodPost, "/api.v1/users/register"))
}

func TestDefaultExemptRules_EmptyRootUsesDefault(t *testing.T) {
	gate := &AuthGate{rules: DefaultExemptRules("")}

	assert.True(t, gate.Exempt(http.MethodGet, "/api/v1/categories"))
}
