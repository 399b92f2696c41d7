package config

import (
	"path/filepath"
	"testing"

	"github.com/paybatch-io/paybatch/internal/models"
)

func TestResolveBaseURL(t *testing.T) {
	settings := models.NewSettings()

	t.Run("settings value by default", func(t *testing.T) {
		t.Setenv(BaseURLEnv, "")
		if got := ResolveBaseURL(settings); got != "http://localhost:8000" {
			t.Errorf("ResolveBaseURL = %q", got)
		}
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(BaseURLEnv, "https://api.staging.example.com")
		if got := ResolveBaseURL(settings); got != "https://api.staging.example.com" {
			t.Errorf("ResolveBaseURL = %q", got)
		}
	})
}

func TestLoadYAMLOrDefault(t *testing.T) {
	t.Run("missing file returns default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		settings, err := LoadYAMLOrDefault(path, models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault: %v", err)
		}
		if settings.API.BaseURL != "http://localhost:8000" {
			t.Errorf("BaseURL = %q", settings.API.BaseURL)
		}
	})

	t.Run("existing file round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		want := models.NewSettings()
		want.API.BaseURL = "https://pay.example.com"
		want.Appearance.Theme = "dark"
		if err := SaveYAML(path, want, 0644); err != nil {
			t.Fatalf("SaveYAML: %v", err)
		}

		got, err := LoadYAMLOrDefault(path, models.NewSettings)
		if err != nil {
			t.Fatalf("LoadYAMLOrDefault: %v", err)
		}
		if got.API.BaseURL != want.API.BaseURL {
			t.Errorf("BaseURL = %q, want %q", got.API.BaseURL, want.API.BaseURL)
		}
		if got.Appearance.Theme != want.Appearance.Theme {
			t.Errorf("Theme = %q, want %q", got.Appearance.Theme, want.Appearance.Theme)
		}
	})
}
