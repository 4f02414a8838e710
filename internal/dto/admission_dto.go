package dto

// AdmissionRequest carries the admission form fields.
type AdmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Program string `json:"program" validate:"omitempty,max=64"`
	Year    string `json:"year" validate:"omitempty,max=16"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Email   string `json:"email" validate:"omitempty,email"`
}
