package tui

import (
	"github.com/paybatch-io/paybatch/internal/models"
)

// eligibleLoadedMsg carries the payment-eligible result set. Seq ties the
// response to the fetch that requested it; responses for superseded
// fetches are dropped.
type eligibleLoadedMsg struct {
	Seq  int
	Logs []models.WorkLog
}

// eligibleFailedMsg signals a failed eligibility fetch.
type eligibleFailedMsg struct {
	Seq int
	Err error
}

// batchDoneMsg signals a completed process/draft mutation.
type batchDoneMsg struct {
	Batch *models.PaymentBatch
	Draft bool
}

// batchFailedMsg signals a failed process/draft mutation.
type batchFailedMsg struct {
	Err error
}

// clearErrorMsg clears the error display.
type clearErrorMsg struct{}

// clearNoticeMsg clears the notice display.
type clearNoticeMsg struct{}
