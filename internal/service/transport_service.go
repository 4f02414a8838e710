package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// validTillLayout is the wire format for pass validity dates.
const validTillLayout = "2006-01-02"

// TransportService manages the pass register and the denormalized transport
// assignment on the student record.
type TransportService interface {
	List(ctx context.Context) ([]models.TransportPass, error)
	Issue(ctx context.Context, role string, req dto.PassIssueRequest) (models.TransportPass, error)
}

type transportService struct {
	students  repository.StudentRepository
	transport repository.TransportRepository
	events    EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTransportService constructs the transport service.
func NewTransportService(students repository.StudentRepository, transport repository.TransportRepository, events EventPublisher, validate *validator.Validate, logger zerolog.Logger) TransportService {
	return &transportService{
		students:  students,
		transport: transport,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "transport_service").Logger(),
		now:       time.Now,
	}
}

func (s *transportService) List(ctx context.Context) ([]models.TransportPass, error) {
	return s.transport.List(ctx)
}

// Issue appends a pass and mirrors its route/stop/bus/validity onto the
// student record, replacing any previous assignment.
func (s *transportService) Issue(ctx context.Context, role string, req dto.PassIssueRequest) (models.TransportPass, error) {
	if !rbac.CanEdit(rbac.SectionTransport, role) {
		return models.TransportPass{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return models.TransportPass{}, err
	}

	student, err := fetchStudent(ctx, s.students, req.StudentID)
	if err != nil {
		return models.TransportPass{}, err
	}

	validUntil, err := time.Parse(validTillLayout, strings.TrimSpace(req.ValidTill))
	if err != nil {
		return models.TransportPass{}, err
	}

	pass := models.TransportPass{
		Reference:   newReference("PASS"),
		StudentCode: student.Code,
		Route:       req.Route,
		Stop:        req.Stop,
		BusNo:       req.BusNo,
		ValidUntil:  validUntil,
		CreatedAt:   s.now(),
	}

	if err := s.transport.Append(ctx, &pass); err != nil {
		return models.TransportPass{}, err
	}

	student.Transport = models.TransportAssignment{
		Route:      pass.Route,
		Stop:       pass.Stop,
		BusNo:      pass.BusNo,
		ValidUntil: &pass.ValidUntil,
	}
	if err := s.students.Update(ctx, &student); err != nil {
		return models.TransportPass{}, err
	}

	s.logger.Info().Str("student", student.Code).Str("route", pass.Route).Str("pass", pass.Reference).Msg("transport pass issued")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionTransport, Action: "issued", StudentID: student.Code, Reference: pass.Reference})
	}

	return pass, nil
}
