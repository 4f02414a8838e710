package models

import "time"

// TransportPass is one issued bus pass. Passes are append-only; the latest
// pass per student is additionally mirrored onto Student.Transport.
type TransportPass struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"size:16;uniqueIndex;not null" json:"reference"`
	StudentCode string    `gorm:"size:16;index;not null" json:"student_code"`
	Route       string    `gorm:"size:32;not null" json:"route"`
	Stop        string    `gorm:"size:64" json:"stop"`
	BusNo       string    `gorm:"size:32" json:"bus_no"`
	ValidUntil  time.Time `gorm:"not null" json:"valid_till"`
	CreatedAt   time.Time `json:"issued_on"`
}
