// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global Paybatch directory.
	GlobalDirName = ".paybatch"

	// SessionsDirName is the name of the per-portal sessions directory.
	SessionsDirName = "sessions"
)

// File names
const (
	SettingsFileName          = "settings.yaml"
	AdminSessionFileName      = "admin.yaml"
	FreelancerSessionFileName = "freelancer.yaml"
)

// GlobalDir returns the path to the global Paybatch directory (~/.paybatch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// SessionsDir returns the path to the sessions directory.
func SessionsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionsDirName), nil
}

// AdminSessionFile returns the path to the admin portal's session file.
func AdminSessionFile() (string, error) {
	dir, err := SessionsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AdminSessionFileName), nil
}

// FreelancerSessionFile returns the path to the freelancer portal's session file.
func FreelancerSessionFile() (string, error) {
	dir, err := SessionsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FreelancerSessionFileName), nil
}

// EnsureSessionsDir creates the sessions directory if it doesn't exist.
// Session files carry bearer tokens, so the directory is owner-only.
func EnsureSessionsDir() error {
	dir, err := SessionsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
