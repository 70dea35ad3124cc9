package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// AdminHandler serves the administrator endpoints.
type AdminHandler struct {
	complaints service.ComplaintService
	reports    service.ReportService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(complaints service.ComplaintService, reports service.ReportService) *AdminHandler {
	return &AdminHandler{complaints: complaints, reports: reports}
}

// UpdateStatusRequest represents a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress resolved rejected"`
}

// AssignRequest represents an assignment. An empty assignee resets to Unassigned.
type AssignRequest struct {
	Assignee string `json:"assignee"`
}

func (h *AdminHandler) guard(c echo.Context) *service.GuardedComplaints {
	return service.Authorized(h.complaints, actor(c))
}

// ListComplaints godoc
// @Summary List all complaints
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search title, id or submitter"
// @Param status query string false "Status or all"
// @Param priority query string false "Priority or all"
// @Param department query string false "Department or all"
// @Success 200 {array} model.Complaint
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/complaints [get]
func (h *AdminHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.guard(c).ListAll(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, service.FilterComplaints(complaints, service.ComplaintFilter{
		Query:      c.QueryParam("q"),
		Status:     c.QueryParam("status"),
		Priority:   c.QueryParam("priority"),
		Department: c.QueryParam("department"),
	}))
}

// Departments godoc
// @Summary List departments with complaints
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/departments [get]
func (h *AdminHandler) Departments(c echo.Context) error {
	complaints, err := h.guard(c).ListAll(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, service.Departments(complaints))
}

// UpdateStatus godoc
// @Summary Change a complaint's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Complaint
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/complaints/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.guard(c).UpdateStatus(c.Request().Context(), c.Param("id"), model.ComplaintStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}
	if complaint == nil {
		return toHTTPError(errors.ErrComplaintNotFound)
	}
	return c.JSON(http.StatusOK, complaint)
}

// Assign godoc
// @Summary Assign a complaint
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body AssignRequest true "Assignee"
// @Success 200 {object} model.Complaint
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/complaints/{id}/assignee [put]
func (h *AdminHandler) Assign(c echo.Context) error {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	complaint, err := h.guard(c).Assign(c.Request().Context(), c.Param("id"), req.Assignee)
	if err != nil {
		return toHTTPError(err)
	}
	if complaint == nil {
		return toHTTPError(errors.ErrComplaintNotFound)
	}
	return c.JSON(http.StatusOK, complaint)
}

// Delete godoc
// @Summary Delete a complaint permanently
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/complaints/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.guard(c).Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary godoc
// @Summary Complaint report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/reports/summary [get]
func (h *AdminHandler) Summary(c echo.Context) error {
	if !actor(c).IsAdmin() {
		return toHTTPError(errors.ErrForbidden)
	}
	summary, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
