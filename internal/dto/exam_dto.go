package dto

// MarksUploadRequest records one subject's marks for a student. Marks outside
// [0,100] are clamped rather than rejected.
type MarksUploadRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Semester  string  `json:"semester" validate:"omitempty,max=8"`
	Subject   string  `json:"subject" validate:"omitempty,max=64"`
	Marks     float64 `json:"marks"`
}

// MarksUploadResponse reports the student's academic standing after the upload.
type MarksUploadResponse struct {
	StudentID string  `json:"student_id"`
	Marks     float64 `json:"marks"`
	Passed    bool    `json:"passed"`
	CGPA      float64 `json:"cgpa"`
	Backlogs  int     `json:"backlogs"`
}
