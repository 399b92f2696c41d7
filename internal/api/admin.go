package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/paybatch-io/paybatch/internal/models"
)

// Admin is the admin portal's endpoint set.
type Admin struct {
	*Client
}

// NewAdmin creates an admin-portal client.
func NewAdmin(baseURL string, session TokenSource) *Admin {
	return &Admin{Client: New(baseURL, session)}
}

// Login exchanges admin credentials for a bearer token.
func (a *Admin) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var res models.LoginResponse
	if err := a.postForm(ctx, "/api/v1/admin/login", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WorkLogFilter narrows an admin worklog listing. Zero values are omitted
// from the query. Dates use YYYY-MM-DD.
type WorkLogFilter struct {
	Status       models.WorkLogStatus
	FreelancerID int64
	StartDate    string
	EndDate      string
}

func (f WorkLogFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.FreelancerID != 0 {
		q.Set("freelancer_id", strconv.FormatInt(f.FreelancerID, 10))
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

// WorkLogs lists worklogs across all freelancers.
func (a *Admin) WorkLogs(ctx context.Context, filter WorkLogFilter) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	if err := a.get(ctx, "/api/v1/worklogs", filter.query(), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// WorkLog fetches one worklog with its time entries embedded.
func (a *Admin) WorkLog(ctx context.Context, id int64) (*models.WorkLog, error) {
	var w models.WorkLog
	if err := a.get(ctx, fmt.Sprintf("/api/v1/worklogs/%d", id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// PaymentEligible lists the worklogs eligible for payment in a date range.
// Eligibility is computed by the backend.
func (a *Admin) PaymentEligible(ctx context.Context, startDate, endDate string) ([]models.WorkLog, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var logs []models.WorkLog
	if err := a.get(ctx, "/api/v1/worklogs/payment-eligible/list", q, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// worklogIDsRequest is the payload of the two batch mutations.
type worklogIDsRequest struct {
	WorkLogIDs []int64 `json:"worklog_ids"`
}

// ProcessPayment pays the given worklogs in a single request. Partial
// failure is reported by the backend as a single error; there is no
// client-side rollback.
func (a *Admin) ProcessPayment(ctx context.Context, worklogIDs []int64) (*models.PaymentBatch, error) {
	var batch models.PaymentBatch
	err := a.sendWithHeaders(ctx, "POST", "/api/v1/worklogs/process-payment",
		worklogIDsRequest{WorkLogIDs: worklogIDs}, requestIDHeader(), &batch)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// CreatePaymentBatch creates a draft batch over the given worklogs.
func (a *Admin) CreatePaymentBatch(ctx context.Context, worklogIDs []int64) (*models.PaymentBatch, error) {
	var batch models.PaymentBatch
	err := a.sendWithHeaders(ctx, "POST", "/api/v1/worklogs/payment-batch",
		worklogIDsRequest{WorkLogIDs: worklogIDs}, requestIDHeader(), &batch)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// ConfirmBatch confirms a draft batch. The transition is one-way and
// enforced server-side.
func (a *Admin) ConfirmBatch(ctx context.Context, batchID int64) (*models.PaymentBatch, error) {
	var batch models.PaymentBatch
	path := fmt.Sprintf("/api/v1/payments/%d/confirm", batchID)
	if err := a.sendWithHeaders(ctx, "POST", path, nil, requestIDHeader(), &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// Batches lists all payment batches.
func (a *Admin) Batches(ctx context.Context) ([]models.PaymentBatch, error) {
	var batches []models.PaymentBatch
	if err := a.get(ctx, "/api/v1/payments/", nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// Batch fetches one batch with its payment lines embedded.
func (a *Admin) Batch(ctx context.Context, id int64) (*models.PaymentBatch, error) {
	var batch models.PaymentBatch
	if err := a.get(ctx, fmt.Sprintf("/api/v1/payments/%d", id), nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// requestIDHeader tags payment mutations with a client-generated ID so a
// retried request is recognizable server-side.
func requestIDHeader() http.Header {
	h := http.Header{}
	h.Set("X-Request-ID", uuid.New().String())
	return h
}
