package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paybatch-io/paybatch/internal/models"
)

// staticToken is a TokenSource with a fixed token.
type staticToken string

func (s staticToken) Get() (string, bool) {
	return string(s), s != ""
}

func TestBearerAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Freelancer{ID: 1})
	}))
	defer srv.Close()

	f := NewFreelancer(srv.URL, staticToken("tok-abc"))
	if _, err := f.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if got != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok-abc")
	}
}

func TestBearerAbsentWithoutSession(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.WorkLog{})
	}))
	defer srv.Close()

	f := NewFreelancer(srv.URL, staticToken(""))
	if _, err := f.WorkLogs(context.Background(), ""); err != nil {
		t.Fatalf("WorkLogs: %v", err)
	}
	if got != "" {
		t.Errorf("Authorization = %q, want empty", got)
	}
}

func TestLoginPostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/freelancer/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if r.PostForm.Get("username") != "dev@example.com" {
			t.Errorf("username = %q", r.PostForm.Get("username"))
		}
		if r.PostForm.Get("password") != "hunter2" {
			t.Errorf("password = %q", r.PostForm.Get("password"))
		}
		json.NewEncoder(w).Encode(models.LoginResponse{AccessToken: "tok", TokenType: "bearer"})
	}))
	defer srv.Close()

	f := NewFreelancer(srv.URL, staticToken(""))
	res, err := f.Login(context.Background(), "dev@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken != "tok" {
		t.Errorf("AccessToken = %q, want %q", res.AccessToken, "tok")
	}
}

func TestWorkLogFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter WorkLogFilter
		want   string
	}{
		{"empty", WorkLogFilter{}, ""},
		{"status only", WorkLogFilter{Status: models.WorkLogStatusApproved}, "status=approved"},
		{
			"full",
			WorkLogFilter{Status: models.WorkLogStatusPending, FreelancerID: 7, StartDate: "2026-08-01", EndDate: "2026-08-31"},
			"end_date=2026-08-31&freelancer_id=7&start_date=2026-08-01&status=pending",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.query().Encode(); got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaymentEligibleQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.WorkLog{{ID: 1, TotalAmount: 50}})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, staticToken("tok"))
	logs, err := a.PaymentEligible(context.Background(), "2026-08-01", "2026-08-25")
	if err != nil {
		t.Fatalf("PaymentEligible: %v", err)
	}
	if gotPath != "/api/v1/worklogs/payment-eligible/list" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "end_date=2026-08-25&start_date=2026-08-01" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(logs) != 1 || logs[0].ID != 1 {
		t.Errorf("logs = %+v", logs)
	}
}

func TestProcessPaymentRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/worklogs/process-payment" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		var body struct {
			WorkLogIDs []int64 `json:"worklog_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.WorkLogIDs) != 2 || body.WorkLogIDs[0] != 3 || body.WorkLogIDs[1] != 9 {
			t.Errorf("worklog_ids = %v", body.WorkLogIDs)
		}
		json.NewEncoder(w).Encode(models.PaymentBatch{ID: 11, WorkLogCount: 2, TotalAmount: 125.5})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, staticToken("tok"))
	batch, err := a.ProcessPayment(context.Background(), []int64{3, 9})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if batch.ID != 11 || batch.WorkLogCount != 2 {
		t.Errorf("batch = %+v", batch)
	}
}

func TestErrorStatusClasses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		check      func(error) bool
	}{
		{
			"unauthorized",
			http.StatusUnauthorized,
			`{"detail": "Could not validate credentials"}`,
			"Could not validate credentials",
			IsAuth,
		},
		{
			"forbidden",
			http.StatusForbidden,
			`{"detail": "Not enough privileges"}`,
			"Not enough privileges",
			IsAuth,
		},
		{
			"not found",
			http.StatusNotFound,
			`{"detail": "Worklog not found"}`,
			"Worklog not found",
			IsNotFound,
		},
		{
			"validation",
			http.StatusUnprocessableEntity,
			`{"detail": [{"loc": ["body", "task_title"], "msg": "field required"}]}`,
			"task_title: field required",
			IsValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			f := NewFreelancer(srv.URL, staticToken("tok"))
			_, err := f.Me(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("predicate rejected %v", err)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error is %T, want *Error", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", apiErr.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	t.Run("validation fields", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "email"], "msg": "invalid email"}, {"loc": ["body", "hourly_rate"], "msg": "must be positive"}]}`
		apiErr := decodeError(422, []byte(body))
		if apiErr.Fields["email"] != "invalid email" {
			t.Errorf("Fields[email] = %q", apiErr.Fields["email"])
		}
		if apiErr.Fields["hourly_rate"] != "must be positive" {
			t.Errorf("Fields[hourly_rate] = %q", apiErr.Fields["hourly_rate"])
		}
	})

	t.Run("non-JSON body", func(t *testing.T) {
		apiErr := decodeError(502, []byte("Bad Gateway\n"))
		if apiErr.Detail != "Bad Gateway" {
			t.Errorf("Detail = %q", apiErr.Detail)
		}
		if apiErr.StatusCode != 502 {
			t.Errorf("StatusCode = %d", apiErr.StatusCode)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		apiErr := decodeError(500, nil)
		if apiErr.Error() != "server returned 500" {
			t.Errorf("Error() = %q", apiErr.Error())
		}
	})
}

func TestConfirmBatchRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if r.URL.Path != "/api/v1/payments/7/confirm" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		json.NewEncoder(w).Encode(models.PaymentBatch{
			ID:           7,
			Status:       models.BatchStatusConfirmed,
			WorkLogCount: 2,
			TotalAmount:  125.50,
		})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, staticToken("tok"))
	batch, err := a.ConfirmBatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("ConfirmBatch: %v", err)
	}
	if batch.Status != models.BatchStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", batch.Status)
	}
	if batch.ID != 7 || batch.TotalAmount != 125.50 {
		t.Errorf("batch = %+v", batch)
	}
}

func TestBatchDetailPaymentLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/payments/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.PaymentBatch{
			ID:          7,
			Status:      models.BatchStatusDraft,
			TotalAmount: 125.50,
			PaymentLines: []models.PaymentLine{
				{ID: 1, BatchID: 7, WorkLogID: 3, FreelancerID: 2, FreelancerName: "Sam Reyes", Amount: 50.00},
				{ID: 2, BatchID: 7, WorkLogID: 9, FreelancerID: 4, Amount: 75.50},
			},
		})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, staticToken("tok"))
	batch, err := a.Batch(context.Background(), 7)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(batch.PaymentLines) != 2 {
		t.Fatalf("PaymentLines = %d, want 2", len(batch.PaymentLines))
	}
	if batch.PaymentLines[0].FreelancerName != "Sam Reyes" {
		t.Errorf("line 0 freelancer = %q", batch.PaymentLines[0].FreelancerName)
	}
	if batch.PaymentLines[1].WorkLogID != 9 || batch.PaymentLines[1].Amount != 75.50 {
		t.Errorf("line 1 = %+v", batch.PaymentLines[1])
	}
}

func TestDeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	f := NewFreelancer(srv.URL, staticToken("tok"))
	if err := f.DeleteWorkLog(context.Background(), 4); err != nil {
		t.Errorf("DeleteWorkLog: %v", err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Payment{})
	}))
	defer srv.Close()

	f := NewFreelancer(srv.URL+"/", staticToken("tok"))
	if _, err := f.Payments(context.Background()); err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if gotPath != "/api/v1/freelancer/payments" {
		t.Errorf("path = %q", gotPath)
	}
}
