package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

const (
	// claimsContextKey holds the *auth.Claims of a verified token.
	claimsContextKey = "user"
	// actorContextKey holds the *model.User owning the current session.
	actorContextKey = "actor"
)

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// toHTTPError renders err with the standard error body.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_FAILED",
	})
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return validationFailed(err)
	}
	return nil
}

// actor returns the signed-in user set by the session middleware, or nil.
func actor(c echo.Context) *model.User {
	u, _ := c.Get(actorContextKey).(*model.User)
	return u
}

func publicUsers(users []model.User) []*model.PublicUser {
	out := make([]*model.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}
