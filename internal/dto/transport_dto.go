package dto

// PassIssueRequest issues a new transport pass to a student.
type PassIssueRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Route     string `json:"route" validate:"required,max=32"`
	Stop      string `json:"stop" validate:"omitempty,max=64"`
	BusNo     string `json:"bus_no" validate:"omitempty,max=32"`
	ValidTill string `json:"valid_till" validate:"required,datetime=2006-01-02"`
}
