package auth

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/paybatch-io/paybatch/internal/api"
	"github.com/paybatch-io/paybatch/internal/models"
	"github.com/paybatch-io/paybatch/internal/session"
)

// fakePortal scripts the portal API responses for the manager.
type fakePortal struct {
	loginRes *models.LoginResponse
	loginErr error
	meRes    *models.Freelancer
	meErr    error
}

func (f *fakePortal) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	return f.loginRes, f.loginErr
}

func (f *fakePortal) Me(ctx context.Context) (*models.Freelancer, error) {
	return f.meRes, f.meErr
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
}

func TestLoginPersistsToken(t *testing.T) {
	store := newTestStore(t)
	portal := &fakePortal{loginRes: &models.LoginResponse{AccessToken: "tok-xyz", TokenType: "bearer"}}
	m := NewManager(portal, store)

	if err := m.Login(context.Background(), "dev@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	token, ok := store.Get()
	if !ok || token != "tok-xyz" {
		t.Errorf("stored token = %q ok=%v, want tok-xyz", token, ok)
	}
	if !m.IsLoggedIn() {
		t.Error("IsLoggedIn = false after login")
	}
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("old-token", "bearer"); err != nil {
		t.Fatal(err)
	}

	portal := &fakePortal{loginErr: &api.Error{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}}
	m := NewManager(portal, store)

	err := m.Login(context.Background(), "dev@example.com", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Detail != "Incorrect email or password" {
		t.Errorf("error = %v, want server detail passed through", err)
	}

	// The previously stored token must survive a failed login.
	token, ok := store.Get()
	if !ok || token != "old-token" {
		t.Errorf("stored token = %q ok=%v, want old-token", token, ok)
	}
}

func TestProfileClearsExpiredSession(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("expired-token", "bearer"); err != nil {
		t.Fatal(err)
	}

	portal := &fakePortal{meErr: &api.Error{StatusCode: http.StatusUnauthorized}}
	m := NewManager(portal, store)

	_, err := m.Profile(context.Background())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Profile error = %v, want ErrNotAuthenticated", err)
	}
	if store.IsLoggedIn() {
		t.Error("expired token not cleared")
	}
}

func TestProfileWithoutSession(t *testing.T) {
	portal := &fakePortal{meRes: &models.Freelancer{ID: 1}}
	m := NewManager(portal, newTestStore(t))

	if _, err := m.Profile(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Profile error = %v, want ErrNotAuthenticated", err)
	}
}

func TestProfileTransportErrorKeepsSession(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("tok", "bearer"); err != nil {
		t.Fatal(err)
	}

	portal := &fakePortal{meErr: errors.New("connection refused")}
	m := NewManager(portal, store)

	_, err := m.Profile(context.Background())
	if err == nil || errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Profile error = %v, want transport error", err)
	}
	// A network failure says nothing about token validity.
	if !store.IsLoggedIn() {
		t.Error("token cleared on transport error")
	}
}

func TestLogoutClearsToken(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("tok", "bearer"); err != nil {
		t.Fatal(err)
	}
	m := NewManager(&fakePortal{}, store)

	if err := m.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if m.IsLoggedIn() {
		t.Error("IsLoggedIn = true after logout")
	}
	// A second logout is a no-op, not an error.
	if err := m.Logout(); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	store := newTestStore(t)
	portal := &registeringPortal{
		fakePortal: fakePortal{},
		registered: &models.Freelancer{ID: 5, Email: "new@example.com"},
	}
	m := NewManager(portal, store)

	profile, err := m.Register(context.Background(), models.RegisterRequest{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if profile.ID != 5 {
		t.Errorf("profile.ID = %d", profile.ID)
	}
	if m.IsLoggedIn() {
		t.Error("Register must not create a session")
	}
}

func TestRegisterUnavailable(t *testing.T) {
	m := NewManager(&fakePortal{}, newTestStore(t))
	if _, err := m.Register(context.Background(), models.RegisterRequest{}); err == nil {
		t.Error("expected error for portal without registration")
	}
}

type registeringPortal struct {
	fakePortal
	registered *models.Freelancer
}

func (p *registeringPortal) Register(ctx context.Context, req models.RegisterRequest) (*models.Freelancer, error) {
	return p.registered, nil
}
