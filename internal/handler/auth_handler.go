package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	identity   service.IdentityService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		identity:   identity,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// SignupRequest represents a signup request. Field rules are checked by the
// identity service so its messages reach the client unchanged.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        *model.PublicUser `json:"user"`
}

// Signup godoc
// @Summary Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	user, err := h.identity.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return h.issue(c, http.StatusCreated, user)
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return h.issue(c, http.StatusOK, user)
}

func (h *AuthHandler) issue(c echo.Context, status int, user *model.User) error {
	token, err := h.jwtService.GenerateAccessToken(user)
	if err != nil {
		h.logger.Error("Failed to sign access token", zap.Error(err))
		return toHTTPError(err)
	}
	return c.JSON(status, AuthResponse{AccessToken: token, User: user.Public()})
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the presented token and clears the session when the token's user holds it.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	if !ok {
		return unauthenticated()
	}

	if err := h.tokenStore.RevokeAccessToken(ctx, claims.ID, h.jwtService.TTL(claims)); err != nil {
		h.logger.Warn("Failed to revoke token", zap.Error(err))
	}

	current, err := h.identity.CurrentUser(ctx)
	if err != nil {
		return toHTTPError(err)
	}
	if current != nil && current.ID == claims.UserID {
		if err := h.identity.Logout(ctx); err != nil {
			return toHTTPError(err)
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, actor(c).Public())
}
