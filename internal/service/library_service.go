package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// ErrNoOpenBorrow indicates a RETURN with no matching open BORROW.
var ErrNoOpenBorrow = errors.New("no open borrow found for this book")

// LibraryService manages the append-only loan transaction log.
type LibraryService interface {
	List(ctx context.Context) ([]models.LibraryTransaction, error)
	Submit(ctx context.Context, role string, req dto.LibraryTxnRequest) (models.LibraryTransaction, error)
}

type libraryService struct {
	students  repository.StudentRepository
	library   repository.LibraryRepository
	events    EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLibraryService constructs the library service.
func NewLibraryService(students repository.StudentRepository, library repository.LibraryRepository, events EventPublisher, validate *validator.Validate, logger zerolog.Logger) LibraryService {
	return &libraryService{
		students:  students,
		library:   library,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "library_service").Logger(),
		now:       time.Now,
	}
}

func (s *libraryService) List(ctx context.Context) ([]models.LibraryTransaction, error) {
	return s.library.List(ctx)
}

// Submit appends one BORROW or RETURN. A RETURN is refused when the pair's
// running balance is not positive; BORROW carries no per-pair cap.
func (s *libraryService) Submit(ctx context.Context, role string, req dto.LibraryTxnRequest) (models.LibraryTransaction, error) {
	if !rbac.CanEdit(rbac.SectionLibrary, role) {
		return models.LibraryTransaction{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return models.LibraryTransaction{}, err
	}

	student, err := fetchStudent(ctx, s.students, req.StudentID)
	if err != nil {
		return models.LibraryTransaction{}, err
	}

	bookID := strings.TrimSpace(req.BookID)
	if req.Action == models.ActionReturn {
		pairLog, err := s.library.ListByPair(ctx, student.Code, bookID)
		if err != nil {
			return models.LibraryTransaction{}, err
		}
		if loanBalance(pairLog) <= 0 {
			return models.LibraryTransaction{}, ErrNoOpenBorrow
		}
	}

	txn := models.LibraryTransaction{
		Reference:   newReference("LTX"),
		StudentCode: student.Code,
		BookID:      bookID,
		Action:      req.Action,
		CreatedAt:   s.now(),
	}

	if err := s.library.Append(ctx, &txn); err != nil {
		return models.LibraryTransaction{}, err
	}

	s.logger.Info().Str("student", student.Code).Str("book", bookID).Str("action", req.Action).Msg("library transaction recorded")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionLibrary, Action: req.Action, StudentID: student.Code, Reference: txn.Reference})
	}

	return txn, nil
}
