package cli

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paybatch-io/paybatch/internal/api"
	"github.com/paybatch-io/paybatch/internal/session"
)

func testDeps(t *testing.T, portal session.Portal) *portalDeps {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), string(portal)+".yaml"))
	return &portalDeps{portal: portal, store: store}
}

func TestDescribeErrorClearsRejectedToken(t *testing.T) {
	deps := testDeps(t, session.PortalAdmin)
	if err := deps.store.Set("stale-token", "bearer"); err != nil {
		t.Fatal(err)
	}

	got := deps.describeError(&api.Error{StatusCode: http.StatusUnauthorized})
	if got == nil || !strings.Contains(got.Error(), "paybatch admin login") {
		t.Errorf("auth error mapped to %v, want sign-in hint", got)
	}
	// The rejected token must not survive, or every later command would
	// repeat the round-trip and the hint.
	if deps.store.IsLoggedIn() {
		t.Error("stale token still stored after auth error")
	}
}

func TestDescribeErrorPortalHint(t *testing.T) {
	deps := testDeps(t, session.PortalFreelancer)
	got := deps.describeError(&api.Error{StatusCode: http.StatusForbidden})
	if got == nil || !strings.Contains(got.Error(), "paybatch freelancer login") {
		t.Errorf("auth error mapped to %v, want freelancer sign-in hint", got)
	}
}

func TestDescribeErrorKeepsTokenOnOtherFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &api.Error{StatusCode: http.StatusNotFound, Detail: "Worklog not found"}, "not found: Worklog not found"},
		{"validation", &api.Error{StatusCode: http.StatusUnprocessableEntity, Detail: "task_title: field required"}, "invalid request: task_title: field required"},
		{"transport", errors.New("connection refused"), "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps(t, session.PortalAdmin)
			if err := deps.store.Set("tok", "bearer"); err != nil {
				t.Fatal(err)
			}

			got := deps.describeError(tt.err)
			if got == nil || got.Error() != tt.want {
				t.Errorf("describeError = %v, want %q", got, tt.want)
			}
			// Only a rejected token reads as signed out.
			if !deps.store.IsLoggedIn() {
				t.Error("token cleared for a non-auth failure")
			}
		})
	}
}
