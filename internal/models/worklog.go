package models

import "time"

// WorkLogStatus is the backend-owned lifecycle state of a worklog.
// The client only requests transitions, never computes them.
type WorkLogStatus string

const (
	WorkLogStatusPending  WorkLogStatus = "pending"
	WorkLogStatusApproved WorkLogStatus = "approved"
	WorkLogStatusPaid     WorkLogStatus = "paid"
	WorkLogStatusRejected WorkLogStatus = "rejected"
)

// WorkLog is a unit of billable work. List endpoints return the summary
// fields; the detail endpoint also embeds time_entries.
type WorkLog struct {
	ID              int64         `json:"id"`
	TaskTitle       string        `json:"task_title"`
	TaskDescription string        `json:"task_description,omitempty"`
	FreelancerID    int64         `json:"freelancer_id"`
	FreelancerName  string        `json:"freelancer_name,omitempty"`
	Status          WorkLogStatus `json:"status"`
	TotalHours      float64       `json:"total_hours"`
	TotalAmount     float64       `json:"total_amount"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	TimeEntries     []TimeEntry   `json:"time_entries,omitempty"`
}

// Editable reports whether the client should offer edit/delete controls.
// Advisory only: the backend enforces the pending-only rule.
func (w *WorkLog) Editable() bool {
	return w.Status == WorkLogStatusPending
}

// TimeEntry is a child of exactly one worklog.
type TimeEntry struct {
	ID        int64      `json:"id"`
	WorkLogID int64      `json:"worklog_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Hours     float64    `json:"hours"`
	Amount    float64    `json:"amount"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateWorkLogRequest opens a new pending worklog.
type CreateWorkLogRequest struct {
	TaskTitle       string `json:"task_title"`
	TaskDescription string `json:"task_description,omitempty"`
}

// UpdateWorkLogRequest patches a pending worklog. Nil fields are left
// unchanged.
type UpdateWorkLogRequest struct {
	TaskTitle       *string `json:"task_title,omitempty"`
	TaskDescription *string `json:"task_description,omitempty"`
}

// CreateTimeEntryRequest adds a time entry to a pending worklog. Either
// EndTime or Hours must be set; the backend derives the other.
type CreateTimeEntryRequest struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Hours     *float64   `json:"hours,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// UpdateTimeEntryRequest patches a time entry. Nil fields are left
// unchanged.
type UpdateTimeEntryRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Hours     *float64   `json:"hours,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// SumAmounts totals the amounts of the given worklogs.
func SumAmounts(logs []WorkLog) float64 {
	var total float64
	for _, w := range logs {
		total += w.TotalAmount
	}
	return total
}

// IncludedTotals returns the count and amount of worklogs not present in
// excluded. This is the review screen's display math; the backend recomputes
// the authoritative totals when a batch is processed.
func IncludedTotals(logs []WorkLog, excluded map[int64]bool) (count int, total float64) {
	for _, w := range logs {
		if excluded[w.ID] {
			continue
		}
		count++
		total += w.TotalAmount
	}
	return count, total
}
