package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/internal/service"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// AdvisorHandler exposes the advisory review endpoint.
type AdvisorHandler struct {
	advisor *service.AdvisorService
}

// NewAdvisorHandler constructs AdvisorHandler.
func NewAdvisorHandler(advisor *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor}
}

// Review godoc
// @Summary Request advisory commentary on a selection
// @Tags Advisor
// @Accept json
// @Produce json
// @Param payload body dto.ReviewRequest true "Selected course codes"
// @Success 200 {object} response.Envelope
// @Router /advisor/review [post]
func (h *AdvisorHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.advisor.Review(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
