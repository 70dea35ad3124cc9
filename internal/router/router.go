package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/handler"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/metrics"
)

// Handlers groups everything the routes dispatch to.
type Handlers struct {
	Auth       *handler.AuthHandler
	Complaints *handler.ComplaintHandler
	Admin      *handler.AdminHandler
	Users      *handler.UserHandler
	Seed       *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, m *metrics.Metrics, mw *handler.AuthMiddleware, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/seed", h.Seed.Seed)

	// Token only: logout must work even when the session already moved on
	tokened := api.Group("", mw.JWT())
	tokened.POST("/auth/logout", h.Auth.Logout)

	// Token bound to the stored session
	secured := tokened.Group("", mw.Session())
	secured.GET("/me", h.Auth.Me)
	secured.GET("/complaints", h.Complaints.List)
	secured.POST("/complaints", h.Complaints.Create)
	secured.GET("/complaints/:id", h.Complaints.Get)
	secured.POST("/complaints/:id/updates", h.Complaints.AddUpdate)

	admin := secured.Group("/admin", mw.RequireAdmin())
	admin.GET("/complaints", h.Admin.ListComplaints)
	admin.GET("/departments", h.Admin.Departments)
	admin.PUT("/complaints/:id/status", h.Admin.UpdateStatus)
	admin.PUT("/complaints/:id/assignee", h.Admin.Assign)
	admin.DELETE("/complaints/:id", h.Admin.Delete)
	admin.GET("/reports/summary", h.Admin.Summary)
	admin.GET("/users", h.Users.ListUsers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
