// Package session persists per-portal bearer tokens. The admin and
// freelancer portals each get their own store bound to its own file, so
// clearing one session can never touch the other.
package session

import (
	"os"
	"time"

	"github.com/paybatch-io/paybatch/internal/config"
)

// Portal identifies which side of the application a session belongs to.
type Portal string

const (
	PortalAdmin      Portal = "admin"
	PortalFreelancer Portal = "freelancer"
)

// credentials is the on-disk shape of a session file.
type credentials struct {
	AccessToken string `yaml:"access_token"`
	TokenType   string `yaml:"token_type"`
	SavedAt     string `yaml:"saved_at"`
}

// Store reads and writes one portal's token. All operations are
// synchronous file accesses; nothing is cached between calls, so a token
// cleared by another process is observed on the next Get.
type Store struct {
	path string
}

// NewStore creates a store bound to an explicit file path. Tests use this
// to avoid touching the real home directory.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ForPortal creates the store for a portal's session file under
// ~/.paybatch/sessions/.
func ForPortal(p Portal) (*Store, error) {
	if err := config.EnsureSessionsDir(); err != nil {
		return nil, err
	}
	var (
		path string
		err  error
	)
	switch p {
	case PortalAdmin:
		path, err = config.AdminSessionFile()
	default:
		path, err = config.FreelancerSessionFile()
	}
	if err != nil {
		return nil, err
	}
	return NewStore(path), nil
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored token, or false if no session exists.
func (s *Store) Get() (string, bool) {
	if !config.FileExists(s.path) {
		return "", false
	}
	var creds credentials
	if err := config.LoadYAML(s.path, &creds); err != nil {
		return "", false
	}
	if creds.AccessToken == "" {
		return "", false
	}
	return creds.AccessToken, true
}

// Set persists a token. The file is owner-only since it carries a bearer
// credential.
func (s *Store) Set(token, tokenType string) error {
	creds := credentials{
		AccessToken: token,
		TokenType:   tokenType,
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	return config.SaveYAML(s.path, &creds, 0600)
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsLoggedIn reports whether a token is currently stored.
func (s *Store) IsLoggedIn() bool {
	_, ok := s.Get()
	return ok
}
