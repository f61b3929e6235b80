package middleware

import (
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"eshop/config"
	deliverycontext "eshop/internal/delivery/context"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	contextKeyUserID  = "userID"
	contextKeyIsAdmin = "isAdmin"
)

// ExemptRule lets requests whose path matches Pattern and whose method is in
// Methods through without a token.
type ExemptRule struct {
	Pattern *regexp.Regexp
	Methods []string
}

// Matches reports whether the rule exempts method and path.
func (r ExemptRule) Matches(method, path string) bool {
	return slices.Contains(r.Methods, method) && r.Pattern.MatchString(path)
}

// DefaultExemptRules returns the public surface: catalog reads, uploaded
// images, login and registration. Order matters; the first match wins.
func DefaultExemptRules(apiRoot string) []ExemptRule {
	root := regexp.QuoteMeta(config.NormalizeAPIRoot(apiRoot))
	readOnly := []string{http.MethodGet, http.MethodOptions}

	return []ExemptRule{
		{Pattern: regexp.MustCompile(`^/public/uploads/.*`), Methods: readOnly},
		{Pattern: regexp.MustCompile(`^` + root + `/products(.*)`), Methods: readOnly},
		{Pattern: regexp.MustCompile(`^` + root + `/categories(.*)`), Methods: readOnly},
		{Pattern: regexp.MustCompile(`^` + root + `/users/login$`), Methods: []string{http.MethodPost}},
		{Pattern: regexp.MustCompile(`^` + root + `/users/register$`), Methods: []string{http.MethodPost}},
	}
}

// AuthGate authenticates every request that no exempt rule lets through.
// Tokens whose isAdmin claim is not true count as revoked.
type AuthGate struct {
	tokenSvc service.TokenService
	rules    []ExemptRule
	logger   *slog.Logger
}

// NewAuthGate builds the gate for the configured API root.
func NewAuthGate(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthGate {
	return &AuthGate{
		tokenSvc: tokenSvc,
		rules:    DefaultExemptRules(cfg.API.Root),
		logger:   logger,
	}
}

// Exempt reports whether the request can skip authentication.
func (g *AuthGate) Exempt(method, path string) bool {
	for _, rule := range g.rules {
		if rule.Matches(method, path) {
			return true
		}
	}

	return false
}

// Handle is the echo middleware.
func (g *AuthGate) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if g.Exempt(req.Method, req.URL.Path) {
			return next(c)
		}

		tokenString, ok := bearerToken(req.Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "missing bearer token")
		}

		claims, err := g.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			g.log(c).Debug("Token rejected", slog.String("path", req.URL.Path), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrUnauthenticated, "invalid token")
		}

		if !claims.IsAdmin {
			g.log(c).Info("Non-admin token refused",
				slog.String("path", req.URL.Path),
				slog.String("user_id", claims.UserID.String()),
			)

			return errors.Wrap(domainerrors.ErrTokenRevoked, "token revoked")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyIsAdmin, claims.IsAdmin)

		return next(c)
	}
}

func (g *AuthGate) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}

// GetUserID returns the authenticated user's id set by the gate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// IsAdmin reports whether the gate authenticated an admin.
func IsAdmin(c echo.Context) bool {
	isAdmin, _ := c.Get(contextKeyIsAdmin).(bool)

	return isAdmin
}
