package dto

import "time"

// FeePaymentRequest carries one fee payment submission.
type FeePaymentRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Term      string  `json:"term" validate:"omitempty,max=32"`
	Mode      string  `json:"mode" validate:"omitempty,max=32"`
}

// FeeReceiptResponse is the receipt produced for a successful payment. It is
// returned for display only; no payment history is stored.
type FeeReceiptResponse struct {
	ReceiptNo   string    `json:"receipt_no"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Term        string    `json:"term"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}
