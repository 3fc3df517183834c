package apperror

import (
	"net/http"

	"go-portfolio-backend/pkg/validation"
)

// AppError carries the HTTP status and client-facing message for a failure.
// Err holds the underlying cause for server-side logs and is never serialized.
type AppError struct {
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
	Err     error                   `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation wraps per-field schema failures. The message is the fixed
// top-level error string of the contact endpoint contract.
func Validation(details []validation.FieldError) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

// Captcha is the single generic CAPTCHA failure; no detail about why the
// token failed ever reaches the client.
func Captcha() *AppError {
	return New(http.StatusBadRequest, "Invalid CAPTCHA token", nil)
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error", err)
}
