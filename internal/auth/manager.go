// Package auth wraps a portal's API client and token store with the
// login/logout/profile rules shared by the CLI and TUI.
package auth

import (
	"context"
	"errors"

	"github.com/paybatch-io/paybatch/internal/api"
	"github.com/paybatch-io/paybatch/internal/models"
	"github.com/paybatch-io/paybatch/internal/session"
)

// ErrNotAuthenticated means no valid session exists for the portal. It is
// returned instead of the underlying fetch error when a stored token turns
// out to be invalid, so callers show one sign-in hint rather than an error
// banner per request.
var ErrNotAuthenticated = errors.New("not authenticated")

// LoginService is the part of a portal API the manager needs.
type LoginService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// ProfileService is implemented by portals that expose a profile endpoint.
type ProfileService interface {
	Me(ctx context.Context) (*models.Freelancer, error)
}

// RegisterService is implemented by portals that allow self-registration.
type RegisterService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Freelancer, error)
}

// Manager owns one portal's authentication state.
type Manager struct {
	svc   LoginService
	store *session.Store
}

// NewManager creates a manager for a portal client and its token store.
func NewManager(svc LoginService, store *session.Store) *Manager {
	return &Manager{svc: svc, store: store}
}

// Login exchanges credentials for a token and persists it. On failure the
// stored token is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.svc.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.store.Set(res.AccessToken, res.TokenType)
}

// Register creates a new account. It never authenticates the caller; the
// new user logs in separately.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*models.Freelancer, error) {
	rs, ok := m.svc.(RegisterService)
	if !ok {
		return nil, errors.New("registration is not available for this portal")
	}
	return rs.Register(ctx, req)
}

// Logout clears the stored token. The other portal's session is unaffected.
func (m *Manager) Logout() error {
	return m.store.Clear()
}

// IsLoggedIn reports whether a token is stored right now. Re-derived on
// every call; never cached.
func (m *Manager) IsLoggedIn() bool {
	return m.store.IsLoggedIn()
}

// Profile fetches the current profile. An auth failure clears the stored
// token and returns ErrNotAuthenticated so an expired session reads as
// signed out, not as a fetch error.
func (m *Manager) Profile(ctx context.Context) (*models.Freelancer, error) {
	ps, ok := m.svc.(ProfileService)
	if !ok {
		return nil, errors.New("profile is not available for this portal")
	}
	if !m.store.IsLoggedIn() {
		return nil, ErrNotAuthenticated
	}
	profile, err := ps.Me(ctx)
	if err != nil {
		if api.IsAuth(err) {
			_ = m.store.Clear()
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return profile, nil
}
