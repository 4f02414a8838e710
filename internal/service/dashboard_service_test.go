package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

func TestComputeTotals(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	expired := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	validToday := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	validLater := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	students := []models.Student{
		{Code: "STU001", TotalFee: 20000, TotalPaid: 8000, Hostel: models.HostelUnassigned, Backlogs: 0},
		{Code: "STU002", TotalFee: 18000, TotalPaid: 18000, Hostel: "A/101/2", Backlogs: 1},
		{Code: "STU003", TotalFee: 20000, TotalPaid: 25000, Hostel: "B/205/1", Backlogs: 0},
	}
	txns := []models.LibraryTransaction{
		txn("STU002", "BK1001", models.ActionBorrow),
		txn("STU003", "BK1002", models.ActionBorrow),
		txn("STU003", "BK1002", models.ActionReturn),
	}
	passes := []models.TransportPass{
		{StudentCode: "STU002", ValidUntil: validLater},
		{StudentCode: "STU003", ValidUntil: validToday},
		{StudentCode: "STU001", ValidUntil: expired},
	}

	totals := computeTotals(students, txns, passes, 40, now)

	require.Equal(t, 3, totals.TotalStudents)
	require.Equal(t, float64(51000), totals.FeesCollected)
	require.Equal(t, float64(12000), totals.Dues, "overpayment must not offset dues")
	require.Equal(t, 2, totals.HostelOccupied)
	require.Equal(t, 38, totals.HostelFree)
	require.Equal(t, 67, totals.PassRate)
	require.Equal(t, 1, totals.BooksOut)
	require.Equal(t, 2, totals.ActivePasses, "a pass valid today still counts")
}

func TestComputeTotalsEmptyRecordSet(t *testing.T) {
	totals := computeTotals(nil, nil, nil, 40, time.Now())

	require.Zero(t, totals.TotalStudents)
	require.Zero(t, totals.FeesCollected)
	require.Zero(t, totals.Dues)
	require.Zero(t, totals.HostelOccupied)
	require.Equal(t, 40, totals.HostelFree)
	require.Zero(t, totals.PassRate, "no students means 0% pass rate, not a division by zero")
	require.Zero(t, totals.BooksOut)
	require.Zero(t, totals.ActivePasses)
}

func TestComputeTotalsAllowsNegativeFreeBeds(t *testing.T) {
	var students []models.Student
	for i := 0; i < 42; i++ {
		students = append(students, models.Student{Hostel: "A/1/1"})
	}

	totals := computeTotals(students, nil, nil, 40, time.Now())
	require.Equal(t, 42, totals.HostelOccupied)
	require.Equal(t, -2, totals.HostelFree)
}

func TestOverviewRecomputesFromRepositories(t *testing.T) {
	students := &fakeStudentRepo{students: []models.Student{
		{ID: 1, Code: "STU001", TotalFee: 20000, TotalPaid: 8000, Hostel: models.HostelUnassigned},
	}}
	library := &fakeLibraryRepo{}
	transport := &fakeTransportRepo{}
	svc := NewDashboardService(students, library, transport, 40, testLogger())

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, overview.Totals.TotalStudents)
	require.Equal(t, 100, overview.Totals.PassRate)
	require.Len(t, overview.Chart, 6)
	require.Equal(t, "Students", overview.Chart[0].Name)

	// a fresh mutation is visible on the next read, no caching involved
	students.students = append(students.students, models.Student{ID: 2, Code: "STU002", Backlogs: 2, Hostel: "A/1/1"})

	overview, err = svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, overview.Totals.TotalStudents)
	require.Equal(t, 50, overview.Totals.PassRate)
	require.Equal(t, 1, overview.Totals.HostelOccupied)
}
