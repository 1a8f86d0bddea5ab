package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/service"
)

type courseRepoStub struct {
	courses map[string]models.Course
}

func (s *courseRepoStub) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	var out []models.Course
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (s *courseRepoStub) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	if c, ok := s.courses[code]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (s *courseRepoStub) ListByCodes(ctx context.Context, codes []string) ([]models.Course, error) {
	var out []models.Course
	for _, code := range codes {
		if c, ok := s.courses[code]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *courseRepoStub) UpsertBatch(ctx context.Context, courses []models.Course) error {
	return nil
}

func stubRepo() *courseRepoStub {
	return &courseRepoStub{courses: map[string]models.Course{
		"CS101": {Code: "CS101", Name: "Algorithms", Credits: 4, LectureSchedule: "MWF 10:00-10:50"},
		"MA201": {Code: "MA201", Name: "Linear Algebra", Credits: 4, LectureSchedule: "M 10:30-11:30"},
	}}
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCatalogHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewCatalogService(stubRepo(), nil, nil, validator.New(), zap.NewNop(), 0)
	h := NewCatalogHandler(svc, 0)

	c, w := newGinContext(http.MethodGet, "/courses", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}

func TestCatalogHandlerListBadAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewCatalogService(stubRepo(), nil, nil, validator.New(), zap.NewNop(), 0)
	h := NewCatalogHandler(svc, 0)

	c, w := newGinContext(http.MethodGet, "/courses?free=not-a-window", nil)
	h.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewCatalogService(stubRepo(), nil, nil, validator.New(), zap.NewNop(), 0)
	h := NewCatalogHandler(svc, 0)

	c, w := newGinContext(http.MethodGet, "/courses/ZZ999", nil)
	c.Params = gin.Params{{Key: "code", Value: "ZZ999"}}
	h.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlannerHandlerConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewPlannerService(stubRepo(), nil, validator.New(), zap.NewNop(), 0)
	h := NewPlannerHandler(svc)

	payload, _ := json.Marshal(dto.SelectionRequest{Codes: []string{"CS101", "MA201"}})
	c, w := newGinContext(http.MethodPost, "/planner/conflicts", payload)
	h.Conflicts(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data dto.ConflictResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Keys)
	assert.NotEmpty(t, envelope.Data.Descriptions)
}

func TestPlannerHandlerConflictsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewPlannerService(stubRepo(), nil, validator.New(), zap.NewNop(), 0)
	h := NewPlannerHandler(svc)

	c, w := newGinContext(http.MethodPost, "/planner/conflicts", []byte("{"))
	h.Conflicts(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerHandlerExportSetsDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewPlannerService(stubRepo(), nil, validator.New(), zap.NewNop(), 0)
	h := NewPlannerHandler(svc)

	payload, _ := json.Marshal(dto.ExportRequest{Codes: []string{"CS101"}, Format: "csv"})
	c, w := newGinContext(http.MethodPost, "/planner/export", payload)
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "course-plan-")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestParseAvailability(t *testing.T) {
	filter, err := parseAvailability([]string{"Mon 09:00-12:00", "Tue 14:00-17:00"})
	require.NoError(t, err)
	require.Len(t, filter, 2)
	assert.Equal(t, models.DayWindow{Day: "Mon", Start: "09:00", End: "12:00"}, filter[0])

	_, err = parseAvailability([]string{"Monday"})
	require.Error(t, err)
}
