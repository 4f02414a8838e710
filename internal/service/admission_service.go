package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// ErrNameRequired indicates an admission with a blank student name.
var ErrNameRequired = errors.New("student name is required")

// AdmissionService manages the master student list.
type AdmissionService interface {
	List(ctx context.Context) ([]models.Student, error)
	Admit(ctx context.Context, role string, req dto.AdmissionRequest) (models.Student, error)
}

type admissionService struct {
	students   repository.StudentRepository
	events     EventPublisher
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
	defaultFee float64
	logger     zerolog.Logger
}

// NewAdmissionService constructs the admission service. defaultFee is the
// totalFee assigned to every new admission.
func NewAdmissionService(students repository.StudentRepository, events EventPublisher, validate *validator.Validate, defaultFee float64, logger zerolog.Logger) AdmissionService {
	return &admissionService{
		students:   students,
		events:     events,
		validator:  validate,
		sanitizer:  bluemonday.StrictPolicy(),
		defaultFee: defaultFee,
		logger:     logger.With().Str("component", "admission_service").Logger(),
	}
}

func (s *admissionService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.List(ctx)
}

func (s *admissionService) Admit(ctx context.Context, role string, req dto.AdmissionRequest) (models.Student, error) {
	if !rbac.CanEdit(rbac.SectionAdmissions, role) {
		return models.Student{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, err
	}

	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return models.Student{}, ErrNameRequired
	}

	count, err := s.students.Count(ctx)
	if err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		Code:      fmt.Sprintf("STU%03d", count+1),
		Name:      name,
		Program:   strings.TrimSpace(s.sanitizer.Sanitize(req.Program)),
		Year:      strings.TrimSpace(s.sanitizer.Sanitize(req.Year)),
		Phone:     strings.TrimSpace(s.sanitizer.Sanitize(req.Phone)),
		Email:     strings.TrimSpace(req.Email),
		TotalFee:  s.defaultFee,
		TotalPaid: 0,
		Hostel:    models.HostelUnassigned,
		CGPA:      0,
		Backlogs:  0,
	}

	if err := s.students.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student", student.Code).Msg("student admitted")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionAdmissions, Action: "admitted", StudentID: student.Code})
	}

	return student, nil
}
