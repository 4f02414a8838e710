package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// passThreshold is the minimum marks for a passing subject.
const passThreshold = 40

// ExamService records subject marks and maintains cgpa/backlog standing.
type ExamService interface {
	UploadMarks(ctx context.Context, role string, req dto.MarksUploadRequest) (dto.MarksUploadResponse, error)
}

type examService struct {
	students  repository.StudentRepository
	events    EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewExamService constructs the exam service.
func NewExamService(students repository.StudentRepository, events EventPublisher, validate *validator.Validate, logger zerolog.Logger) ExamService {
	return &examService{
		students:  students,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "exam_service").Logger(),
	}
}

// UploadMarks clamps marks to [0,100], blends the cgpa and bumps the backlog
// count on a fail. The cgpa update is a single-step blend of the previous
// value with marks/10, not a weighted average over all subjects.
func (s *examService) UploadMarks(ctx context.Context, role string, req dto.MarksUploadRequest) (dto.MarksUploadResponse, error) {
	if !rbac.CanEdit(rbac.SectionExams, role) {
		return dto.MarksUploadResponse{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return dto.MarksUploadResponse{}, err
	}

	student, err := fetchStudent(ctx, s.students, req.StudentID)
	if err != nil {
		return dto.MarksUploadResponse{}, err
	}

	marks := math.Max(0, math.Min(100, req.Marks))
	passed := marks >= passThreshold

	student.CGPA = math.Round(((student.CGPA+marks/10)/2)*10) / 10
	if !passed {
		student.Backlogs++
	}

	if err := s.students.Update(ctx, &student); err != nil {
		return dto.MarksUploadResponse{}, err
	}

	s.logger.Info().Str("student", student.Code).Float64("marks", marks).Bool("passed", passed).Msg("marks uploaded")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionExams, Action: "marks", StudentID: student.Code})
	}

	return dto.MarksUploadResponse{
		StudentID: student.Code,
		Marks:     marks,
		Passed:    passed,
		CGPA:      student.CGPA,
		Backlogs:  student.Backlogs,
	}, nil
}
