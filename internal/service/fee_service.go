package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// FeeService records fee payments against student totals.
type FeeService interface {
	PayFee(ctx context.Context, role string, req dto.FeePaymentRequest) (dto.FeeReceiptResponse, error)
}

type feeService struct {
	students  repository.StudentRepository
	events    EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewFeeService constructs the fee service.
func NewFeeService(students repository.StudentRepository, events EventPublisher, validate *validator.Validate, logger zerolog.Logger) FeeService {
	return &feeService{
		students:  students,
		events:    events,
		validator: validate,
		logger:    logger.With().Str("component", "fee_service").Logger(),
		now:       time.Now,
	}
}

// PayFee increments the student's paid total and returns a receipt for
// display. No payment history is stored; the receipt is the only artifact.
func (s *feeService) PayFee(ctx context.Context, role string, req dto.FeePaymentRequest) (dto.FeeReceiptResponse, error) {
	if !rbac.CanEdit(rbac.SectionFees, role) {
		return dto.FeeReceiptResponse{}, ErrPermissionDenied
	}

	if err := s.validator.Struct(req); err != nil {
		return dto.FeeReceiptResponse{}, err
	}

	student, err := fetchStudent(ctx, s.students, req.StudentID)
	if err != nil {
		return dto.FeeReceiptResponse{}, err
	}

	student.TotalPaid += req.Amount
	if err := s.students.Update(ctx, &student); err != nil {
		return dto.FeeReceiptResponse{}, err
	}

	receipt := dto.FeeReceiptResponse{
		ReceiptNo:   newReference("RCT"),
		StudentID:   student.Code,
		StudentName: student.Name,
		Term:        req.Term,
		Amount:      req.Amount,
		Date:        s.now(),
	}

	s.logger.Info().Str("student", student.Code).Float64("amount", req.Amount).Str("receipt", receipt.ReceiptNo).Msg("fee payment recorded")
	if s.events != nil {
		s.events.Publish(ctx, DomainEvent{Section: rbac.SectionFees, Action: "payment", StudentID: student.Code, Reference: receipt.ReceiptNo})
	}

	return receipt, nil
}
