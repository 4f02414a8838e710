package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// SeedService loads the demo dataset into an empty record store.
type SeedService interface {
	EnsureDemoData(ctx context.Context) error
}

type seedService struct {
	students  repository.StudentRepository
	library   repository.LibraryRepository
	transport repository.TransportRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSeedService constructs the seed service.
func NewSeedService(students repository.StudentRepository, library repository.LibraryRepository, transport repository.TransportRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		students:  students,
		library:   library,
		transport: transport,
		logger:    logger.With().Str("component", "seed_service").Logger(),
		now:       time.Now,
	}
}

// EnsureDemoData seeds two students, one open borrow and one pass. It is a
// no-op when any student already exists.
func (s *seedService) EnsureDemoData(ctx context.Context) error {
	count, err := s.students.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	validUntil := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	anita := models.Student{
		Code:     "STU001",
		Name:     "Anita Sharma",
		Program:  "B.Sc.",
		Year:     "1",
		Phone:    "9876543210",
		Email:    "anita@example.com",
		TotalFee: 20000, TotalPaid: 8000,
		Hostel: models.HostelUnassigned,
	}
	ravi := models.Student{
		Code:     "STU002",
		Name:     "Ravi Verma",
		Program:  "B.A.",
		Year:     "2",
		Phone:    "9898989898",
		Email:    "ravi@example.com",
		TotalFee: 18000, TotalPaid: 18000,
		Hostel:   "A/101/2",
		CGPA:     7.8,
		Backlogs: 1,
		Transport: models.TransportAssignment{
			Route:      "R1",
			Stop:       "Central Gate",
			BusNo:      "RJ-14-1234",
			ValidUntil: &validUntil,
		},
	}

	for _, student := range []*models.Student{&anita, &ravi} {
		if err := s.students.Create(ctx, student); err != nil {
			return err
		}
	}

	borrow := models.LibraryTransaction{
		Reference:   "LTX-000001",
		StudentCode: ravi.Code,
		BookID:      "BK1001",
		Action:      models.ActionBorrow,
		CreatedAt:   s.now(),
	}
	if err := s.library.Append(ctx, &borrow); err != nil {
		return err
	}

	pass := models.TransportPass{
		Reference:   "PASS-000001",
		StudentCode: ravi.Code,
		Route:       "R1",
		Stop:        "Central Gate",
		BusNo:       "RJ-14-1234",
		ValidUntil:  validUntil,
		CreatedAt:   s.now(),
	}
	if err := s.transport.Append(ctx, &pass); err != nil {
		return err
	}

	s.logger.Info().Msg("demo dataset seeded")
	return nil
}
