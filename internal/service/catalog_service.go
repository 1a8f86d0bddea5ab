package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/csvio"
	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/schedule"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
)

// availabilityFetchSize bounds the in-memory pass used when an availability
// filter is active. Catalogs are term-sized, a few thousand rows at most.
const availabilityFetchSize = 5000

type catalogRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	UpsertBatch(ctx context.Context, courses []models.Course) error
}

// CatalogService serves catalog listings and ingests catalog CSV files.
type CatalogService struct {
	repo      catalogRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(repo catalogRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cacheTTL time.Duration) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger, cacheTTL: cacheTTL}
}

type cachedCourseList struct {
	Courses    []models.Course    `json:"courses"`
	Pagination *models.Pagination `json:"pagination"`
}

// List returns catalog courses matching the filter. When an availability
// filter is present the page is assembled in memory, because containment
// against parsed time slots cannot be pushed into SQL.
func (s *CatalogService) List(ctx context.Context, filter models.CourseFilter, avail models.TimeFilter) ([]models.Course, *models.Pagination, error) {
	if len(avail) > 0 {
		return s.listWithAvailability(ctx, filter, avail)
	}

	key := listCacheKey(filter)
	if s.cache.Enabled() {
		var cached cachedCourseList
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached.Courses, cached.Pagination, nil
		}
	}

	start := time.Now()
	courses, total, err := s.repo.List(ctx, filter)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("courses_list", time.Since(start))
	}
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	pagination := paginationFor(filter, total)
	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, key, cachedCourseList{Courses: courses, Pagination: pagination}, s.cacheTTL); err != nil {
			s.logger.Debug("course list cache write skipped", zap.Error(err))
		}
	}
	return courses, pagination, nil
}

func (s *CatalogService) listWithAvailability(ctx context.Context, filter models.CourseFilter, avail models.TimeFilter) ([]models.Course, *models.Pagination, error) {
	broad := filter
	broad.Page = 1
	broad.PageSize = availabilityFetchSize

	start := time.Now()
	courses, _, err := s.repo.List(ctx, broad)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("courses_list", time.Since(start))
	}
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	fitting := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if schedule.WithinFilter(course, avail) {
			fitting = append(fitting, course)
		}
	}
	if s.metrics != nil {
		s.metrics.RecordEvaluation("availability_filter")
	}

	pagination := paginationFor(filter, len(fitting))
	offset := (pagination.Page - 1) * pagination.PageSize
	if offset >= len(fitting) {
		return []models.Course{}, pagination, nil
	}
	end := offset + pagination.PageSize
	if end > len(fitting) {
		end = len(fitting)
	}
	return fitting[offset:end], pagination, nil
}

// Get returns a single course by code.
func (s *CatalogService) Get(ctx context.Context, code string) (*models.Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course code is required")
	}

	key := "courses:code:" + code
	if s.cache.Enabled() {
		var cached models.Course
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	start := time.Now()
	course, err := s.repo.FindByCode(ctx, code)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("courses_find", time.Since(start))
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, key, course, s.cacheTTL); err != nil {
			s.logger.Debug("course cache write skipped", zap.Error(err))
		}
	}
	return course, nil
}

// Import ingests a catalog CSV stream, upserting by course code. Rows without
// a usable code are counted as skipped rather than failing the batch.
func (s *CatalogService) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	courses, skipped, err := csvio.LoadCourses(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to parse catalog file")
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "catalog file contains no usable rows")
	}

	start := time.Now()
	if err := s.repo.UpsertBatch(ctx, courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store catalog")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("courses_upsert", time.Since(start))
	}

	if err := s.cache.Invalidate(ctx, "courses:*"); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("catalog imported",
		zap.Int("imported", len(courses)),
		zap.Int("skipped", skipped))
	return &dto.ImportResult{Imported: len(courses), Skipped: skipped}, nil
}

func paginationFor(filter models.CourseFilter, total int) *models.Pagination {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 50
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

func listCacheKey(filter models.CourseFilter) string {
	return fmt.Sprintf("courses:list:%s:%s:%s:%d:%d:%s:%s",
		strings.ToLower(filter.Branch),
		strings.ToLower(filter.Type),
		strings.ToLower(filter.Search),
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder)
}
