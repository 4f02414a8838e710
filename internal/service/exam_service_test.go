package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

func examTestRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: []models.Student{
		{ID: 1, Code: "STU001", Name: "Anita Sharma", Hostel: models.HostelUnassigned},
	}}
}

func TestUploadMarksFailIncrementsBacklogsPassDoesNot(t *testing.T) {
	repo := examTestRepo()
	svc := NewExamService(repo, &fakeEvents{}, testValidator(), testLogger())

	result, err := svc.UploadMarks(context.Background(), rbac.RoleExamCell, dto.MarksUploadRequest{StudentID: "STU001", Marks: 30})
	require.NoError(t, err)
	require.False(t, result.Passed)
	require.Equal(t, 1, result.Backlogs)

	result, err = svc.UploadMarks(context.Background(), rbac.RoleExamCell, dto.MarksUploadRequest{StudentID: "STU001", Marks: 85})
	require.NoError(t, err)
	require.True(t, result.Passed)
	require.Equal(t, 1, result.Backlogs, "passing must not decrement backlogs")
}

func TestUploadMarksBlendsCGPA(t *testing.T) {
	repo := examTestRepo()
	svc := NewExamService(repo, &fakeEvents{}, testValidator(), testLogger())

	// from zero: ((0 + 8.5) / 2) rounded to one decimal
	result, err := svc.UploadMarks(context.Background(), rbac.RoleAdmin, dto.MarksUploadRequest{StudentID: "STU001", Marks: 85})
	require.NoError(t, err)
	require.InDelta(t, 4.3, result.CGPA, 1e-9)

	// next upload blends against the stored value: ((4.3 + 6.0) / 2) = 5.15 -> 5.2
	result, err = svc.UploadMarks(context.Background(), rbac.RoleAdmin, dto.MarksUploadRequest{StudentID: "STU001", Marks: 60})
	require.NoError(t, err)
	require.InDelta(t, 5.2, result.CGPA, 1e-9)
}

func TestUploadMarksClampsToRange(t *testing.T) {
	repo := examTestRepo()
	svc := NewExamService(repo, &fakeEvents{}, testValidator(), testLogger())

	result, err := svc.UploadMarks(context.Background(), rbac.RoleAdmin, dto.MarksUploadRequest{StudentID: "STU001", Marks: 140})
	require.NoError(t, err)
	require.Equal(t, float64(100), result.Marks)
	require.True(t, result.Passed)

	result, err = svc.UploadMarks(context.Background(), rbac.RoleAdmin, dto.MarksUploadRequest{StudentID: "STU001", Marks: -20})
	require.NoError(t, err)
	require.Zero(t, result.Marks)
	require.False(t, result.Passed)
}

func TestUploadMarksDeniedWithoutEditRights(t *testing.T) {
	repo := examTestRepo()
	svc := NewExamService(repo, &fakeEvents{}, testValidator(), testLogger())

	_, err := svc.UploadMarks(context.Background(), rbac.RoleWarden, dto.MarksUploadRequest{StudentID: "STU001", Marks: 90})
	require.ErrorIs(t, err, ErrPermissionDenied)

	untouched, err := repo.GetByCode(context.Background(), "STU001")
	require.NoError(t, err)
	require.Zero(t, untouched.CGPA)
	require.Zero(t, untouched.Backlogs)
}
