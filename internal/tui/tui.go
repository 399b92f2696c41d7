// Package tui implements the interactive batch-review screen for the
// admin portal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paybatch-io/paybatch/internal/api"
)

// Run launches the review TUI over the payment-eligible worklogs for the
// given date range.
func Run(admin *api.Admin, startDate, endDate string) error {
	model := NewModel(admin, startDate, endDate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
