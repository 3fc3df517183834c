package v1

import (
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required).
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact handles one contact form submission. Success only depends on
// schema validation and CAPTCHA verification; persistence and notifications
// are best-effort inside the usecase.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that does not even parse is a validation failure, same
		// shape as per-field errors but with nothing to point at.
		c.Error(apperror.Validation(nil))
		return
	}

	meta := domain.RequestMeta{
		IPAddress: clientIP(c),
		UserAgent: c.Request.UserAgent(),
	}

	if _, err := h.contactUC.Submit(c.Request.Context(), &req, meta); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully")
}

// clientIP extracts the best-effort client address from forwarded headers,
// matching what the site's edge proxy sets.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if rip := c.GetHeader("X-Real-IP"); rip != "" {
		return rip
	}
	return c.ClientIP()
}
