package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/internal/models"
	"github.com/noah-isme/course-planner-api/internal/schedule"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/export"
)

type plannerRepository interface {
	ListByCodes(ctx context.Context, codes []string) ([]models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string, notes []string) ([]byte, error)
}

// PlannerService evaluates course selections against the schedule engine.
// Selections live entirely in the request; nothing is persisted between calls.
type PlannerService struct {
	repo         plannerRepository
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	csv          csvRenderer
	pdf          pdfRenderer
	maxSelection int
}

// NewPlannerService constructs the planner service.
func NewPlannerService(repo plannerRepository, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, maxSelection int) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxSelection <= 0 {
		maxSelection = 40
	}
	return &PlannerService{
		repo:         repo,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		maxSelection: maxSelection,
	}
}

// Conflicts reports every pairwise clash across the selected courses together
// with the hour bounds of the combined timetable.
func (s *PlannerService) Conflicts(ctx context.Context, req dto.SelectionRequest) (*dto.ConflictResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection")
	}
	courses, err := s.loadSelection(ctx, req.Codes)
	if err != nil {
		return nil, err
	}

	report := schedule.DetectConflicts(courses)
	earliest, latest := schedule.TimeRange(courses)
	if s.metrics != nil {
		s.metrics.RecordEvaluation("conflicts")
	}

	return &dto.ConflictResponse{
		Keys:            report.SortedKeys(),
		Descriptions:    report.SortedDescriptions(),
		EarliestMinutes: earliest,
		LatestMinutes:   latest,
	}, nil
}

// CheckClash reports which already-selected courses a candidate would collide
// with, without mutating anything.
func (s *PlannerService) CheckClash(ctx context.Context, req dto.CheckClashRequest) (*dto.CheckClashResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid clash check")
	}

	candidate, err := s.repo.FindByCode(ctx, strings.TrimSpace(req.Candidate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate course")
	}

	var existing []models.Course
	if len(req.Codes) > 0 {
		existing, err = s.loadSelection(ctx, req.Codes)
		if err != nil {
			return nil, err
		}
	}

	clashes := schedule.CheckClash(*candidate, existing)
	if s.metrics != nil {
		s.metrics.RecordEvaluation("check_clash")
	}
	return &dto.CheckClashResponse{Candidate: candidate.Code, ClashesWith: clashes}, nil
}

// Grid expands the selection into renderable slots plus conflict keys for
// highlighting and the hour bounds for sizing the weekly view.
func (s *PlannerService) Grid(ctx context.Context, req dto.SelectionRequest) (*dto.GridResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection")
	}
	courses, err := s.loadSelection(ctx, req.Codes)
	if err != nil {
		return nil, err
	}

	var slots []models.TimeSlot
	for _, course := range courses {
		slots = append(slots, schedule.CourseSlots(course)...)
	}
	sortSlots(slots)

	report := schedule.DetectConflicts(courses)
	earliest, latest := schedule.TimeRange(courses)
	if s.metrics != nil {
		s.metrics.RecordEvaluation("grid")
	}

	return &dto.GridResponse{
		Slots:           slots,
		ConflictKeys:    report.SortedKeys(),
		EarliestMinutes: earliest,
		LatestMinutes:   latest,
	}, nil
}

// Export renders the selection timetable as a downloadable CSV or PDF file.
// PDF output carries the conflict summaries as footnotes.
func (s *PlannerService) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	courses, err := s.loadSelection(ctx, req.Codes)
	if err != nil {
		return nil, err
	}

	var slots []models.TimeSlot
	for _, course := range courses {
		slots = append(slots, schedule.CourseSlots(course)...)
	}
	sortSlots(slots)

	names := make(map[string]string, len(courses))
	for _, course := range courses {
		names[course.Code] = course.Name
	}

	data := export.Dataset{
		Headers: []string{"Day", "Start", "End", "Code", "Course", "Component"},
	}
	for _, slot := range slots {
		data.Rows = append(data.Rows, map[string]string{
			"Day":       slot.Day,
			"Start":     slot.Start,
			"End":       slot.End,
			"Code":      slot.CourseCode,
			"Course":    names[slot.CourseCode],
			"Component": string(slot.Component),
		})
	}

	stamp := time.Now().Format("20060102")
	switch req.Format {
	case "pdf":
		report := schedule.DetectConflicts(courses)
		payload, err := s.pdf.Render(data, "Weekly Course Plan", report.SortedDescriptions())
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &dto.ExportResult{
			FileName:    "course-plan-" + stamp + ".pdf",
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &dto.ExportResult{
			FileName:    "course-plan-" + stamp + ".csv",
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	}
}

// loadSelection resolves request codes into catalog courses, preserving the
// request order. Unknown codes fail the whole call so a stale client cannot
// silently plan around a missing course.
func (s *PlannerService) loadSelection(ctx context.Context, codes []string) ([]models.Course, error) {
	unique := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	if len(unique) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "selection contains no course codes")
	}
	if len(unique) > s.maxSelection {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			"selection exceeds the maximum of "+strconv.Itoa(s.maxSelection)+" courses")
	}

	found, err := s.repo.ListByCodes(ctx, unique)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load selection")
	}

	byCode := make(map[string]models.Course, len(found))
	for _, course := range found {
		byCode[course.Code] = course
	}

	ordered := make([]models.Course, 0, len(unique))
	var missing []string
	for _, code := range unique {
		course, ok := byCode[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		ordered = append(ordered, course)
	}
	if len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound,
			fmt.Sprintf("unknown courses: %s", strings.Join(missing, ", ")))
	}
	return ordered, nil
}

func sortSlots(slots []models.TimeSlot) {
	order := make(map[string]int, len(models.Weekdays))
	for i, day := range models.Weekdays {
		order[day] = i
	}
	sort.SliceStable(slots, func(i, j int) bool {
		di, iKnown := order[slots[i].Day]
		dj, jKnown := order[slots[j].Day]
		if iKnown != jKnown {
			return iKnown
		}
		if di != dj {
			return di < dj
		}
		if slots[i].StartMinutes != slots[j].StartMinutes {
			return slots[i].StartMinutes < slots[j].StartMinutes
		}
		return slots[i].CourseCode < slots[j].CourseCode
	})
}
