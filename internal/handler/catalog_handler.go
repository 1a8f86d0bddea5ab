package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/service"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/response"
)

// CatalogHandler exposes catalog endpoints.
type CatalogHandler struct {
	catalog        *service.CatalogService
	importMaxBytes int64
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, importMaxBytes int64) *CatalogHandler {
	if importMaxBytes <= 0 {
		importMaxBytes = 8 << 20
	}
	return &CatalogHandler{catalog: catalog, importMaxBytes: importMaxBytes}
}

// List godoc
// @Summary List catalog courses
// @Tags Catalog
// @Produce json
// @Param branch query string false "Filter by branch"
// @Param type query string false "Filter by course type tag"
// @Param search query string false "Search in code or name"
// @Param free query []string false "Availability window, repeatable, e.g. Mon 09:00-12:00" collectionFormat(multi)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var filter models.CourseFilter
	filter.Branch = strings.TrimSpace(c.Query("branch"))
	filter.Type = strings.TrimSpace(c.Query("type"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.PageSize = size
	}
	filter.SortBy = c.Query("sort")
	filter.SortOrder = c.Query("order")

	avail, err := parseAvailability(c.QueryArray("free"))
	if err != nil {
		response.Error(c, err)
		return
	}

	courses, pagination, err := h.catalog.List(c.Request.Context(), filter, avail)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, pagination)
}

// Get godoc
// @Summary Get one catalog course
// @Tags Catalog
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /courses/{code} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	course, err := h.catalog.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// Import godoc
// @Summary Import a catalog CSV file
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Catalog CSV"
// @Success 200 {object} response.Envelope
// @Router /courses/import [post]
func (h *CatalogHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "catalog file is required"))
		return
	}
	if fileHeader.Size > h.importMaxBytes {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "catalog file is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to open catalog file"))
		return
	}
	defer file.Close()

	result, err := h.catalog.Import(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// parseAvailability turns repeated "Day HH:MM-HH:MM" params into a filter.
func parseAvailability(raw []string) (models.TimeFilter, error) {
	var filter models.TimeFilter
	for _, entry := range raw {
		fields := strings.Fields(strings.TrimSpace(entry))
		if len(fields) != 2 {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				"availability windows must look like \"Mon 09:00-12:00\"")
		}
		times := strings.SplitN(fields[1], "-", 2)
		if len(times) != 2 {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				"availability windows must look like \"Mon 09:00-12:00\"")
		}
		filter = append(filter, models.DayWindow{Day: fields[0], Start: times[0], End: times[1]})
	}
	return filter, nil
}
