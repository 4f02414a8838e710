package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// HostelService manages hostel slot allocation.
type HostelService interface {
	Allocate(ctx context.Context, role string, req dto.HostelAllocationRequest) (models.Student, error)
}

type hostelService struct {
	students  repository.StudentRepository
	events    EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewHostelService constructs the hostel service.
func NewHostelService(students repository.StudentRepository, events EventPublisher, validate *validator.Validate, logger zerolog.Logger) HostelService {
	return &hostelService{
		students:  students,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "hostel_service").Logger(),
	}
}

// Allocate overwrites the student's slot label. Allocation performs no check
// against the bed capacity; occupancy may exceed the advertised total.
func (s *hostelService) Allocate(ctx context.Context, role string, req dto.HostelAllocationRequest) (models.Student, error) {
	if !rbac.CanEdit(rbac.SectionHostel, role) {
		return models.Student{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, err
	}

	student, err := fetchStudent(ctx, s.students, req.StudentID)
	if err != nil {
		return models.Student{}, err
	}

	student.Hostel = fmt.Sprintf("%s/%s/%s", req.Hostel, req.Room, req.Bed)
	if err := s.students.Update(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student", student.Code).Str("slot", student.Hostel).Msg("hostel slot allocated")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionHostel, Action: "allocated", StudentID: student.Code})
	}

	return student, nil
}
