package models

import "time"

// BatchStatus is the backend-owned state of a payment batch. Confirming a
// draft is a one-way transition enforced server-side.
type BatchStatus string

const (
	BatchStatusDraft     BatchStatus = "draft"
	BatchStatusConfirmed BatchStatus = "confirmed"
)

// PaymentBatch groups paid worklogs over a date range. Draft batches are
// previews. Dates use the backend's YYYY-MM-DD form.
type PaymentBatch struct {
	ID           int64         `json:"id"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Status       BatchStatus   `json:"status"`
	TotalAmount  float64       `json:"total_amount"`
	WorkLogCount int           `json:"worklog_count"`
	CreatedAt    time.Time     `json:"created_at"`
	PaymentLines []PaymentLine `json:"payment_lines,omitempty"`
}

// PaymentLine is one freelancer's share of a batch.
type PaymentLine struct {
	ID             int64   `json:"id"`
	BatchID        int64   `json:"batch_id"`
	WorkLogID      int64   `json:"worklog_id"`
	FreelancerID   int64   `json:"freelancer_id"`
	FreelancerName string  `json:"freelancer_name,omitempty"`
	Amount         float64 `json:"amount"`
}

// Payment is a row in the freelancer-visible payment history.
type Payment struct {
	ID        int64     `json:"id"`
	BatchID   int64     `json:"batch_id"`
	WorkLogID int64     `json:"worklog_id"`
	Amount    float64   `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}
