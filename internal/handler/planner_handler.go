package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/internal/service"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// PlannerHandler exposes schedule evaluation endpoints. All of them are POST
// even though they read nothing but the request body; the selection is the
// whole state and it never fits a query string comfortably.
type PlannerHandler struct {
	planner *service.PlannerService
}

// NewPlannerHandler constructs PlannerHandler.
func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// Conflicts godoc
// @Summary Detect conflicts across a selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.SelectionRequest true "Selected course codes"
// @Success 200 {object} response.Envelope
// @Router /planner/conflicts [post]
func (h *PlannerHandler) Conflicts(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.planner.Conflicts(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// CheckClash godoc
// @Summary Check a candidate course against a selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.CheckClashRequest true "Candidate and selected codes"
// @Success 200 {object} response.Envelope
// @Router /planner/check-clash [post]
func (h *PlannerHandler) CheckClash(c *gin.Context) {
	var req dto.CheckClashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.planner.CheckClash(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Grid godoc
// @Summary Expand a selection into weekly grid slots
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.SelectionRequest true "Selected course codes"
// @Success 200 {object} response.Envelope
// @Router /planner/grid [post]
func (h *PlannerHandler) Grid(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.planner.Grid(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Download a selection timetable as CSV or PDF
// @Tags Planner
// @Accept json
// @Produce application/octet-stream
// @Param payload body dto.ExportRequest true "Selected course codes and format"
// @Success 200 {file} binary
// @Router /planner/export [post]
func (h *PlannerHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.planner.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+result.FileName)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
