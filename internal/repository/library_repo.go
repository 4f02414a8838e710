package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

// LibraryRepository provides access to the append-only loan transaction log.
// Listings are always in append order so ledger folds see the log as written.
type LibraryRepository interface {
	List(ctx context.Context) ([]models.LibraryTransaction, error)
	ListByPair(ctx context.Context, studentCode, bookID string) ([]models.LibraryTransaction, error)
	Append(ctx context.Context, txn *models.LibraryTransaction) error
}

type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository constructs a library transaction repository.
func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) List(ctx context.Context) ([]models.LibraryTransaction, error) {
	var txns []models.LibraryTransaction
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&txns).Error; err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *libraryRepository) ListByPair(ctx context.Context, studentCode, bookID string) ([]models.LibraryTransaction, error) {
	var txns []models.LibraryTransaction
	err := r.db.WithContext(ctx).
		Where("student_code = ? AND book_id = ?", studentCode, bookID).
		Order("id ASC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *libraryRepository) Append(ctx context.Context, txn *models.LibraryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}
