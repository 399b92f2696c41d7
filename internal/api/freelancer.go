package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/paybatch-io/paybatch/internal/models"
)

// Freelancer is the freelancer portal's endpoint set.
type Freelancer struct {
	*Client
}

// NewFreelancer creates a freelancer-portal client.
func NewFreelancer(baseURL string, session TokenSource) *Freelancer {
	return &Freelancer{Client: New(baseURL, session)}
}

// Login exchanges credentials for a bearer token. The endpoint takes a
// form-encoded body with the email in the username field.
func (f *Freelancer) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var res models.LoginResponse
	if err := f.postForm(ctx, "/api/v1/freelancer/login", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a new account. It does not authenticate the caller.
func (f *Freelancer) Register(ctx context.Context, req models.RegisterRequest) (*models.Freelancer, error) {
	var profile models.Freelancer
	if err := f.send(ctx, "POST", "/api/v1/freelancer/register", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Me fetches the authenticated freelancer's profile.
func (f *Freelancer) Me(ctx context.Context) (*models.Freelancer, error) {
	var profile models.Freelancer
	if err := f.get(ctx, "/api/v1/freelancer/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateMe patches the authenticated freelancer's profile.
func (f *Freelancer) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.Freelancer, error) {
	var profile models.Freelancer
	if err := f.send(ctx, "PATCH", "/api/v1/freelancer/me", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangePassword rotates the account password.
func (f *Freelancer) ChangePassword(ctx context.Context, current, next string) error {
	req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return f.send(ctx, "POST", "/api/v1/freelancer/me/password", req, nil)
}

// WorkLogs lists the freelancer's worklogs, optionally filtered by status.
func (f *Freelancer) WorkLogs(ctx context.Context, status models.WorkLogStatus) ([]models.WorkLog, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var logs []models.WorkLog
	if err := f.get(ctx, "/api/v1/freelancer/worklogs", query, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// WorkLog fetches one worklog with its time entries embedded.
func (f *Freelancer) WorkLog(ctx context.Context, id int64) (*models.WorkLog, error) {
	var w models.WorkLog
	if err := f.get(ctx, fmt.Sprintf("/api/v1/freelancer/worklogs/%d", id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkLog opens a new pending worklog.
func (f *Freelancer) CreateWorkLog(ctx context.Context, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	var w models.WorkLog
	if err := f.send(ctx, "POST", "/api/v1/freelancer/worklogs", req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWorkLog patches a pending worklog.
func (f *Freelancer) UpdateWorkLog(ctx context.Context, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	var w models.WorkLog
	if err := f.send(ctx, "PATCH", fmt.Sprintf("/api/v1/freelancer/worklogs/%d", id), req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWorkLog removes a pending worklog.
func (f *Freelancer) DeleteWorkLog(ctx context.Context, id int64) error {
	return f.send(ctx, "DELETE", fmt.Sprintf("/api/v1/freelancer/worklogs/%d", id), nil, nil)
}

// AddTimeEntry appends a time entry to a pending worklog.
func (f *Freelancer) AddTimeEntry(ctx context.Context, worklogID int64, req models.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	path := fmt.Sprintf("/api/v1/freelancer/worklogs/%d/entries", worklogID)
	if err := f.send(ctx, "POST", path, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateTimeEntry patches a time entry of a pending worklog.
func (f *Freelancer) UpdateTimeEntry(ctx context.Context, worklogID, entryID int64, req models.UpdateTimeEntryRequest) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	path := fmt.Sprintf("/api/v1/freelancer/worklogs/%d/entries/%d", worklogID, entryID)
	if err := f.send(ctx, "PATCH", path, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteTimeEntry removes a time entry from a pending worklog.
func (f *Freelancer) DeleteTimeEntry(ctx context.Context, worklogID, entryID int64) error {
	path := fmt.Sprintf("/api/v1/freelancer/worklogs/%d/entries/%d", worklogID, entryID)
	return f.send(ctx, "DELETE", path, nil, nil)
}

// Payments lists the freelancer's payment history.
func (f *Freelancer) Payments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := f.get(ctx, "/api/v1/freelancer/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
