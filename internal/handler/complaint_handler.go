package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// ComplaintHandler serves the signed-in user's complaint endpoints.
type ComplaintHandler struct {
	complaints service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaints service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

// CreateComplaintRequest represents a new complaint.
type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

// AddUpdateRequest represents a comment on a complaint.
type AddUpdateRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *ComplaintHandler) guard(c echo.Context) *service.GuardedComplaints {
	return service.Authorized(h.complaints, actor(c))
}

// List godoc
// @Summary List my complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search title, id or submitter"
// @Param status query string false "Status or all"
// @Param priority query string false "Priority or all"
// @Success 200 {array} model.Complaint
// @Failure 401 {object} errors.ErrorResponse
// @Router /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	complaints, err := h.guard(c).ListMine(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, service.FilterComplaints(complaints, service.ComplaintFilter{
		Query:    c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	}))
}

// Create godoc
// @Summary Submit a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateComplaintRequest true "Complaint"
// @Success 201 {object} model.Complaint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	var req CreateComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.guard(c).Create(c.Request().Context(), service.CreateComplaintInput{
		Title:       req.Title,
		Category:    req.Category,
		Department:  req.Department,
		Location:    req.Location,
		Description: req.Description,
		Priority:    model.ComplaintPriority(req.Priority),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, complaint)
}

// Get godoc
// @Summary Get a complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} model.Complaint
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	complaint, err := h.guard(c).Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if complaint == nil {
		return toHTTPError(errors.ErrComplaintNotFound)
	}
	return c.JSON(http.StatusOK, complaint)
}

// AddUpdate godoc
// @Summary Comment on a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body AddUpdateRequest true "Comment"
// @Success 201 {object} model.Complaint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /complaints/{id}/updates [post]
func (h *ComplaintHandler) AddUpdate(c echo.Context) error {
	var req AddUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.guard(c).AddUpdate(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return toHTTPError(err)
	}
	if complaint == nil {
		return toHTTPError(errors.ErrComplaintNotFound)
	}
	return c.JSON(http.StatusCreated, complaint)
}
