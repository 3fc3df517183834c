package v1

import (
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the operator routes over persisted submissions.
func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{
		adminUC: adminUC,
	}

	protected.GET("/submissions", handler.ListSubmissions)
	protected.GET("/submissions/:id", handler.GetSubmission)
	protected.PATCH("/submissions/:id", handler.UpdateSubmission)
}

type submissionList struct {
	Submissions []domain.ContactSubmission `json:"submissions"`
	Total       int64                      `json:"total"`
	Limit       int                        `json:"limit"`
	Offset      int                        `json:"offset"`
}

type updateSubmissionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subs, total, err := h.adminUC.ListSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Data(c, http.StatusOK, "OK", submissionList{
		Submissions: subs,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	})
}

func (h *AdminHandler) GetSubmission(c *gin.Context) {
	sub, err := h.adminUC.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, "OK", sub)
}

func (h *AdminHandler) UpdateSubmission(c *gin.Context) {
	var req updateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.adminUC.UpdateSubmission(c.Request.Context(), c.Param("id"), req.Status, req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submission updated")
}
