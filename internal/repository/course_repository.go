package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/course-planner-api/internal/models"
)

const courseColumns = `code, branch, name, course_type, credits, instructor, lecture_schedule, tutorial_schedule, practical_schedule, created_at, updated_at`

// CourseRepository provides persistence for the course catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new catalog repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns catalog courses with optional filtering and pagination.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	base := "FROM courses WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Branch != "" {
		conditions = append(conditions, fmt.Sprintf("branch = $%d", len(args)+1))
		args = append(args, filter.Branch)
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("course_type ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Type+"%")
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(code) LIKE $%d OR LOWER(name) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "code"
	}
	allowedSorts := map[string]bool{
		"code":       true,
		"name":       true,
		"branch":     true,
		"credits":    true,
		"created_at": true,
	}
	if !allowedSorts[sortBy] {
		sortBy = "code"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 500 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", courseColumns, base, sortBy, order, size, offset)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	for i := range courses {
		courses[i].HydrateTypes()
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	return courses, total, nil
}

// FindByCode loads a single course by its code.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE code = $1", courseColumns)
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, code); err != nil {
		return nil, err
	}
	course.HydrateTypes()
	return &course, nil
}

// ListByCodes loads the courses for a selection, preserving no particular
// database order; callers reorder by their selection if needed.
func (r *CourseRepository) ListByCodes(ctx context.Context, codes []string) ([]models.Course, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM courses WHERE code = ANY($1)", courseColumns)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, pq.Array(codes)); err != nil {
		return nil, fmt.Errorf("list courses by codes: %w", err)
	}
	for i := range courses {
		courses[i].HydrateTypes()
	}
	return courses, nil
}

// UpsertBatch inserts or replaces catalog rows, keyed by course code. Used
// by catalog imports; the import deduplicates codes before calling.
func (r *CourseRepository) UpsertBatch(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `INSERT INTO courses (code, branch, name, course_type, credits, instructor, lecture_schedule, tutorial_schedule, practical_schedule, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (code) DO UPDATE SET
			branch = EXCLUDED.branch,
			name = EXCLUDED.name,
			course_type = EXCLUDED.course_type,
			credits = EXCLUDED.credits,
			instructor = EXCLUDED.instructor,
			lecture_schedule = EXCLUDED.lecture_schedule,
			tutorial_schedule = EXCLUDED.tutorial_schedule,
			practical_schedule = EXCLUDED.practical_schedule,
			updated_at = EXCLUDED.updated_at`

	now := time.Now().UTC()
	for _, course := range courses {
		if _, err := tx.ExecContext(ctx, query,
			course.Code,
			course.Branch,
			course.Name,
			course.CourseType,
			course.Credits,
			course.Instructor,
			course.LectureSchedule,
			course.TutorialSchedule,
			course.PracticalSchedule,
			now,
		); err != nil {
			return fmt.Errorf("upsert course %s: %w", course.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog upsert: %w", err)
	}
	return nil
}
