package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/observability"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// DashboardService aggregates the campus KPI metrics. Metrics are recomputed
// fresh from the record set on every read; nothing is cached.
type DashboardService interface {
	Overview(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	students  repository.StudentRepository
	library   repository.LibraryRepository
	transport repository.TransportRepository
	capacity  int
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDashboardService constructs the dashboard service. capacity is the
// advertised hostel bed total used for the free-bed metric.
func NewDashboardService(students repository.StudentRepository, library repository.LibraryRepository, transport repository.TransportRepository, capacity int, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		students:  students,
		library:   library,
		transport: transport,
		capacity:  capacity,
		logger:    logger.With().Str("component", "dashboard_service").Logger(),
		now:       time.Now,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (dto.DashboardResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/campus-admin-api/internal/service/dashboard")
	ctx, span := tracer.Start(ctx, "dashboard.aggregate")
	defer span.End()

	students, err := s.students.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_students_failed")
		return dto.DashboardResponse{}, err
	}

	txns, err := s.library.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_transactions_failed")
		return dto.DashboardResponse{}, err
	}

	passes, err := s.transport.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_passes_failed")
		return dto.DashboardResponse{}, err
	}

	totals := computeTotals(students, txns, passes, s.capacity, s.now())
	span.SetAttributes(
		attribute.Int("dashboard.total_students", totals.TotalStudents),
		attribute.Int("dashboard.books_out", totals.BooksOut),
		attribute.Int("dashboard.active_passes", totals.ActivePasses),
	)

	observability.SetDashboardTotals(totals)

	return dto.DashboardResponse{Totals: totals, Chart: chartPoints(totals)}, nil
}

// computeTotals derives every dashboard metric from a snapshot of the record
// set. The metrics are independent of each other; only the inputs matter.
func computeTotals(students []models.Student, txns []models.LibraryTransaction, passes []models.TransportPass, capacity int, now time.Time) dto.DashboardTotalsResponse {
	totals := dto.DashboardTotalsResponse{TotalStudents: len(students)}

	zeroBacklogs := 0
	for _, student := range students {
		totals.FeesCollected += student.TotalPaid
		totals.Dues += student.Dues()
		if student.HostelAssigned() {
			totals.HostelOccupied++
		}
		if student.Backlogs == 0 {
			zeroBacklogs++
		}
	}

	// Not clamped: occupancy beyond capacity shows as negative free beds.
	totals.HostelFree = capacity - totals.HostelOccupied

	// Zero students means a 0% pass rate rather than a division by zero.
	if totals.TotalStudents > 0 {
		totals.PassRate = int(math.Round(float64(zeroBacklogs) / float64(totals.TotalStudents) * 100))
	}

	totals.BooksOut = openLoanTotal(txns)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, pass := range passes {
		if !pass.ValidUntil.Before(today) {
			totals.ActivePasses++
		}
	}

	return totals
}

func chartPoints(totals dto.DashboardTotalsResponse) []dto.ChartPoint {
	return []dto.ChartPoint{
		{Name: "Students", Value: float64(totals.TotalStudents)},
		{Name: "Fees Collected", Value: totals.FeesCollected},
		{Name: "Dues", Value: totals.Dues},
		{Name: "Hostel Filled", Value: float64(totals.HostelOccupied)},
		{Name: "Books Out", Value: float64(totals.BooksOut)},
		{Name: "Active Passes", Value: float64(totals.ActivePasses)},
	}
}
