package models

import "time"

// Library transaction actions.
const (
	ActionBorrow = "BORROW"
	ActionReturn = "RETURN"
)

// LibraryTransaction is one append-only entry in the loan log. The log is the
// sole source of truth for loan state; entries are never updated or removed.
// The autoincrement ID defines the fold order for balance computation.
type LibraryTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"size:16;uniqueIndex;not null" json:"reference"`
	StudentCode string    `gorm:"size:16;index;not null" json:"student_code"`
	BookID      string    `gorm:"size:32;index;not null" json:"book_id"`
	Action      string    `gorm:"size:8;not null" json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}
