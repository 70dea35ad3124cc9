package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	identity service.IdentityService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(identity service.IdentityService) *SeedHandler {
	return &SeedHandler{identity: identity}
}

// Seed godoc
// @Summary Seed demo accounts and complaints
// @Description Does nothing once any user exists, so it is safe to call repeatedly.
// @Tags seed
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	if err := h.identity.EnsureSeedData(c.Request().Context()); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "seed data ready"})
}
