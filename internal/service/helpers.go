package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/repository"
)

// fetchStudent resolves a caller-supplied student id to a record, trimming
// whitespace and mapping a missing row to ErrStudentNotFound.
func fetchStudent(ctx context.Context, repo repository.StudentRepository, id string) (models.Student, error) {
	code := strings.TrimSpace(id)
	if code == "" {
		return models.Student{}, ErrStudentNotFound
	}

	student, err := repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}

	return student, nil
}
