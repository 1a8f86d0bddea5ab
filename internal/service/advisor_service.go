package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner-api/internal/dto"
	"github.com/noah-isme/course-planner-api/pkg/config"
	appErrors "github.com/noah-isme/course-planner-api/pkg/errors"
	"github.com/noah-isme/course-planner-api/pkg/retry"
)

const advisorSystemPrompt = "You are an academic advisor. Given a list of courses a student " +
	"plans to take in one term, comment briefly on workload balance, schedule spread, and " +
	"anything worth double-checking. Answer in plain prose, no markdown."

type advisorClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AdvisorService forwards course selections to an external text-generation
// collaborator and returns its commentary verbatim. The advice is opaque to
// the planner; nothing downstream parses it.
type AdvisorService struct {
	repo      plannerRepository
	client    advisorClient
	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.AdvisorConfig
}

// NewAdvisorService constructs the advisor service. A nil client disables the
// feature regardless of configuration.
func NewAdvisorService(repo plannerRepository, client advisorClient, cfg config.AdvisorConfig, validate *validator.Validate, logger *zap.Logger) *AdvisorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorService{repo: repo, client: client, validator: validate, logger: logger, cfg: cfg}
}

// Enabled reports whether advisory reviews can be served.
func (s *AdvisorService) Enabled() bool {
	return s != nil && s.cfg.Enabled && s.client != nil
}

// Review asks the collaborator to comment on the selection.
func (s *AdvisorService) Review(ctx context.Context, req dto.ReviewRequest) (*dto.ReviewResponse, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "advisory reviews are not enabled")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review request")
	}

	courses, err := s.repo.ListByCodes(ctx, req.Codes)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load selection")
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no matching courses in the catalog")
	}

	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, dto.CourseSummary{
			Code:              course.Code,
			Name:              course.Name,
			Credits:           course.Credits,
			Instructor:        course.Instructor,
			LectureSchedule:   course.LectureSchedule,
			TutorialSchedule:  course.TutorialSchedule,
			PracticalSchedule: course.PracticalSchedule,
		})
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode selection")
	}
	prompt := fmt.Sprintf("Planned courses for the term:\n%s", payload)

	var advice string
	err = retry.Do(ctx, retry.Config{MaxAttempts: s.cfg.MaxRetries, BaseDelay: s.cfg.RetryDelay}, func(ctx context.Context) error {
		var callErr error
		advice, callErr = s.client.Complete(ctx, advisorSystemPrompt, prompt)
		return callErr
	})
	if err != nil {
		s.logger.Warn("advisor call failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "advisory service is unreachable")
	}

	return &dto.ReviewResponse{Advice: advice, Courses: summaries}, nil
}
