package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the API's
// wire shapes. Anything that is not an AppError is logged server-side and
// collapsed into a generic 500; internals never reach the client.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Error("Request failed", "error", appErr.Err, "path", c.FullPath(), "status", appErr.Code)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		log.Error("Unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
