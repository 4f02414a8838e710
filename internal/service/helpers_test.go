package service

import (
	"context"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-admin-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

type fakeStudentRepo struct {
	students []models.Student
	nextID   uint
}

func (f *fakeStudentRepo) List(context.Context) ([]models.Student, error) {
	return append([]models.Student(nil), f.students...), nil
}

func (f *fakeStudentRepo) GetByCode(_ context.Context, code string) (models.Student, error) {
	for _, student := range f.students {
		if student.Code == code {
			return student, nil
		}
	}
	return models.Student{}, gorm.ErrRecordNotFound
}

func (f *fakeStudentRepo) Count(context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	f.nextID++
	student.ID = f.nextID
	f.students = append(f.students, *student)
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	for i, existing := range f.students {
		if existing.Code == student.Code {
			f.students[i] = *student
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeLibraryRepo struct {
	txns   []models.LibraryTransaction
	nextID uint
}

func (f *fakeLibraryRepo) List(context.Context) ([]models.LibraryTransaction, error) {
	return append([]models.LibraryTransaction(nil), f.txns...), nil
}

func (f *fakeLibraryRepo) ListByPair(_ context.Context, studentCode, bookID string) ([]models.LibraryTransaction, error) {
	var matched []models.LibraryTransaction
	for _, txn := range f.txns {
		if txn.StudentCode == studentCode && txn.BookID == bookID {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

func (f *fakeLibraryRepo) Append(_ context.Context, txn *models.LibraryTransaction) error {
	f.nextID++
	txn.ID = f.nextID
	f.txns = append(f.txns, *txn)
	return nil
}

type fakeTransportRepo struct {
	passes []models.TransportPass
	nextID uint
}

func (f *fakeTransportRepo) List(context.Context) ([]models.TransportPass, error) {
	// newest first, matching the register display order
	reversed := make([]models.TransportPass, 0, len(f.passes))
	for i := len(f.passes) - 1; i >= 0; i-- {
		reversed = append(reversed, f.passes[i])
	}
	return reversed, nil
}

func (f *fakeTransportRepo) Append(_ context.Context, pass *models.TransportPass) error {
	f.nextID++
	pass.ID = f.nextID
	f.passes = append(f.passes, *pass)
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (f *fakeEvents) Publish(_ context.Context, event DomainEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeEvents) Subscribe() (<-chan DomainEvent, func()) {
	channel := make(chan DomainEvent)
	close(channel)
	return channel, func() {}
}

func (f *fakeEvents) published() []DomainEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]DomainEvent(nil), f.events...)
}
