package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/config"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure backend and appearance settings",
	Long: `Configure settings interactively.

This allows you to modify:
  - Backend base URL (also overridable via ` + config.BaseURLEnv + `)
  - Theme`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed := false

	baseURL := promptDefault("Backend base URL", settings.API.BaseURL)
	if baseURL != settings.API.BaseURL {
		if !isValidBaseURL(baseURL) {
			return fmt.Errorf("invalid base URL: %s (expected http(s)://host[:port])", baseURL)
		}
		settings.API.BaseURL = baseURL
		changed = true
	}

	theme := promptDefault("Theme (system/light/dark)", settings.Appearance.Theme)
	if theme != settings.Appearance.Theme {
		if theme != "system" && theme != "light" && theme != "dark" {
			return fmt.Errorf("theme must be 'system', 'light', or 'dark'")
		}
		settings.Appearance.Theme = theme
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated.")
	if env := os.Getenv(config.BaseURLEnv); env != "" {
		fmt.Println(styleWarning.Render(fmt.Sprintf("Note: %s=%s is set and overrides the configured base URL.", config.BaseURLEnv, env)))
	}
	return nil
}

// isValidBaseURL validates an http(s) base URL.
func isValidBaseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
