package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

// TransportRepository provides access to the append-only pass register.
type TransportRepository interface {
	List(ctx context.Context) ([]models.TransportPass, error)
	Append(ctx context.Context, pass *models.TransportPass) error
}

type transportRepository struct {
	db *gorm.DB
}

// NewTransportRepository constructs a transport pass repository.
func NewTransportRepository(db *gorm.DB) TransportRepository {
	return &transportRepository{db: db}
}

// List returns passes newest first, matching the register display order.
func (r *transportRepository) List(ctx context.Context) ([]models.TransportPass, error) {
	var passes []models.TransportPass
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&passes).Error; err != nil {
		return nil, err
	}

	return passes, nil
}

func (r *transportRepository) Append(ctx context.Context, pass *models.TransportPass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}
