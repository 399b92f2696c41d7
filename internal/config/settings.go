package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/paybatch-io/paybatch/internal/models"
)

// BaseURLEnv overrides the configured backend host when set.
const BaseURLEnv = "PAYBATCH_API_URL"

// LoadDotEnv loads a .env file from the working directory if one exists.
// Missing files are not an error; the environment wins over file values
// already set.
func LoadDotEnv() {
	if FileExists(".env") {
		_ = godotenv.Load()
	}
}

// LoadSettings loads the global settings from ~/.paybatch/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.paybatch/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings, 0644)
}

// ResolveBaseURL returns the backend base URL, preferring the
// PAYBATCH_API_URL environment variable over the settings file.
func ResolveBaseURL(settings *models.Settings) string {
	if v := os.Getenv(BaseURLEnv); v != "" {
		return v
	}
	return settings.API.BaseURL
}
