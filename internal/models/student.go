package models

import "time"

// HostelUnassigned is the sentinel slot label for students without a hostel bed.
const HostelUnassigned = "-"

// TransportAssignment mirrors the most recently issued transport pass onto the
// student record.
type TransportAssignment struct {
	Route      string     `gorm:"size:32" json:"route"`
	Stop       string     `gorm:"size:64" json:"stop"`
	BusNo      string     `gorm:"size:32" json:"bus_no"`
	ValidUntil *time.Time `json:"valid_till"`
}

// Assigned reports whether the student currently holds a transport assignment.
func (t TransportAssignment) Assigned() bool {
	return t.Route != ""
}

// Student is the master admission record. Students are created by an admission
// action, mutated in place by the section services, and never deleted.
type Student struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	Code      string              `gorm:"size:16;uniqueIndex;not null" json:"code"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	Program   string              `gorm:"size:64" json:"program"`
	Year      string              `gorm:"size:16" json:"year"`
	Phone     string              `gorm:"size:32" json:"phone"`
	Email     string              `gorm:"size:255" json:"email"`
	TotalFee  float64             `gorm:"not null" json:"total_fee"`
	TotalPaid float64             `gorm:"not null" json:"total_paid"`
	Hostel    string              `gorm:"size:32;not null;default:'-'" json:"hostel"`
	CGPA      float64             `json:"cgpa"`
	Backlogs  int                 `json:"backlogs"`
	Transport TransportAssignment `gorm:"embedded;embeddedPrefix:transport_" json:"transport"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Dues returns the outstanding fee balance, clamped at zero when a student has
// overpaid.
func (s Student) Dues() float64 {
	if dues := s.TotalFee - s.TotalPaid; dues > 0 {
		return dues
	}
	return 0
}

// HostelAssigned reports whether the student occupies a hostel slot.
func (s Student) HostelAssigned() bool {
	return s.Hostel != HostelUnassigned && s.Hostel != ""
}
