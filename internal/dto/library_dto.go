package dto

// LibraryTxnRequest submits one BORROW or RETURN action.
type LibraryTxnRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	BookID    string `json:"book_id" validate:"required,max=32"`
	Action    string `json:"action" validate:"required,oneof=BORROW RETURN"`
}
