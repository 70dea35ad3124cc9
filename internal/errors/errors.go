package errors

import (
	"errors"
	"net/http"
)

// Failure is an expected domain outcome carrying a message fit for display.
// Services return failures as ordinary error values; anything that is not a
// *Failure is an environment fault (storage down, hashing unavailable).
type Failure struct {
	Code    string
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Is matches failures by code so wrapped copies still compare equal.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t.Code == f.Code
}

// NewFailure creates a failure with the given code and message.
func NewFailure(code, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = NewFailure("INVALID_CREDENTIALS", "Invalid email or password.")
	// ErrNameRequired is returned when signup has a blank name.
	ErrNameRequired = NewFailure("NAME_REQUIRED", "Name is required.")
	// ErrEmailRequired is returned when signup has a blank email.
	ErrEmailRequired = NewFailure("EMAIL_REQUIRED", "Email is required.")
	// ErrPasswordTooShort is returned when the signup password has fewer than 6 characters.
	ErrPasswordTooShort = NewFailure("PASSWORD_TOO_SHORT", "Password must be at least 6 characters.")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = NewFailure("EMAIL_TAKEN", "An account with this email already exists.")

	// ErrComplaintNotFound is returned by transports when a complaint id has no match.
	ErrComplaintNotFound = NewFailure("COMPLAINT_NOT_FOUND", "Complaint not found.")
	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = NewFailure("INVALID_STATUS", "Invalid complaint status.")
	// ErrInvalidPriority is returned for a priority outside the known set.
	ErrInvalidPriority = NewFailure("INVALID_PRIORITY", "Invalid complaint priority.")

	// ErrUnauthenticated is returned when an operation needs a signed-in user.
	ErrUnauthenticated = NewFailure("UNAUTHENTICATED", "Sign in to continue.")
	// ErrForbidden is returned when the signed-in user lacks the capability.
	ErrForbidden = NewFailure("FORBIDDEN", "You do not have access to this resource.")
)

// AsFailure reports whether err is a domain failure and returns it.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	f, ok := AsFailure(err)
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	switch f.Code {
	case ErrInvalidCredentials.Code, ErrUnauthenticated.Code:
		return NewHTTPError(http.StatusUnauthorized, f.Message, f.Code)
	case ErrForbidden.Code:
		return NewHTTPError(http.StatusForbidden, f.Message, f.Code)
	case ErrComplaintNotFound.Code:
		return NewHTTPError(http.StatusNotFound, f.Message, f.Code)
	case ErrEmailTaken.Code:
		return NewHTTPError(http.StatusConflict, f.Message, f.Code)
	default:
		return NewHTTPError(http.StatusBadRequest, f.Message, f.Code)
	}
}
