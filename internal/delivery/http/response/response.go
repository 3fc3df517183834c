// Package response standardizes the API's JSON envelopes. The contact
// endpoint's shapes are a public contract consumed by the site frontend:
// success is {"message": ...}, failure is {"error": ..., "details": [...]}.
package response

import (
	"github.com/gin-gonic/gin"

	"go-portfolio-backend/pkg/validation"
)

// SuccessBody is the success envelope.
type SuccessBody struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the error envelope. Details are only present for validation
// failures.
type ErrorBody struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Success sends a success response.
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessBody{Message: message})
}

// Data sends a success response carrying a payload (admin endpoints).
func Data(c *gin.Context, code int, message string, data any) {
	c.JSON(code, SuccessBody{Message: message, Data: data})
}

// Error sends an error response.
func Error(c *gin.Context, code int, errMsg string, details []validation.FieldError) {
	c.JSON(code, ErrorBody{Error: errMsg, Details: details})
}
