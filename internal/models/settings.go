package models

// APIConfig holds the backend connection settings.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.paybatch/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	API        APIConfig        `yaml:"api"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
