package dto

// HostelAllocationRequest assigns a student to a hostel/room/bed slot.
type HostelAllocationRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Hostel    string `json:"hostel" validate:"required,max=16"`
	Room      string `json:"room" validate:"required,max=16"`
	Bed       string `json:"bed" validate:"required,max=8"`
}
