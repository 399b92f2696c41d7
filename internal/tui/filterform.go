package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// FilterForm is the date-range overlay.
type FilterForm struct {
	start      textinput.Model
	end        textinput.Model
	focusIndex int
}

// NewFilterForm creates the form pre-filled with the current range.
func NewFilterForm(startDate, endDate string) *FilterForm {
	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = 10
	start.Width = 12
	start.SetValue(startDate)
	start.Focus()

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.CharLimit = 10
	end.Width = 12
	end.SetValue(endDate)

	return &FilterForm{start: start, end: end}
}

// FocusNext moves focus to the other field.
func (f *FilterForm) FocusNext() {
	f.focusIndex = 1 - f.focusIndex
	if f.focusIndex == 0 {
		f.start.Focus()
		f.end.Blur()
	} else {
		f.start.Blur()
		f.end.Focus()
	}
}

// Update forwards a message to the focused field.
func (f *FilterForm) Update(msg tea.Msg) {
	if f.focusIndex == 0 {
		f.start, _ = f.start.Update(msg)
	} else {
		f.end, _ = f.end.Update(msg)
	}
}

// Values returns the entered range.
func (f *FilterForm) Values() (startDate, endDate string) {
	return f.start.Value(), f.end.Value()
}

// Validate checks both dates parse and are ordered.
func (f *FilterForm) Validate() error {
	start, err := time.Parse(dateLayout, f.start.Value())
	if err != nil {
		return fmt.Errorf("invalid start date: %s", f.start.Value())
	}
	end, err := time.Parse(dateLayout, f.end.Value())
	if err != nil {
		return fmt.Errorf("invalid end date: %s", f.end.Value())
	}
	if end.Before(start) {
		return fmt.Errorf("end date is before start date")
	}
	return nil
}

// View renders the overlay content.
func (f *FilterForm) View() string {
	title := overlayTitleStyle.Render("Date range")
	fields := lipgloss.JoinVertical(lipgloss.Left,
		"Start  "+f.start.View(),
		"End    "+f.end.View(),
	)
	help := overlayDimStyle.Render("Tab switch · Enter apply · Esc cancel")
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, fields, "", help))
}
