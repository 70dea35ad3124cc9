package handler

import (
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// AuthMiddleware verifies access tokens and binds them to the stored session.
type AuthMiddleware struct {
	identity   service.IdentityService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	logger     *zap.Logger
}

// NewAuthMiddleware creates the token and session middlewares.
func NewAuthMiddleware(identity service.IdentityService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{
		identity:   identity,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

func unauthenticated() *echo.HTTPError {
	return toHTTPError(errors.ErrUnauthenticated)
}

// JWT verifies the bearer token and stores its *auth.Claims in the context.
func (m *AuthMiddleware) JWT() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := m.jwtService.ValidateToken(strings.TrimSpace(token))
			if err != nil {
				return nil, err
			}
			revoked, err := m.tokenStore.IsAccessTokenRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if revoked {
				return nil, errors.ErrUnauthenticated
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthenticated()
		},
	})
}

// Session admits the request only when the token's user holds the single
// stored session. A token issued before a logout, or before someone else
// signed in, is rejected.
func (m *AuthMiddleware) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*auth.Claims)
			if !ok {
				return unauthenticated()
			}

			user, err := m.identity.CurrentUser(c.Request().Context())
			if err != nil {
				m.logger.Error("Failed to resolve session", zap.Error(err))
				return toHTTPError(err)
			}
			if user == nil || user.ID != claims.UserID {
				return unauthenticated()
			}

			c.Set(actorContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin actors with 403.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := actor(c)
			if u == nil {
				return unauthenticated()
			}
			if !u.IsAdmin() {
				return toHTTPError(errors.ErrForbidden)
			}
			return next(c)
		}
	}
}
