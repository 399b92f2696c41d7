package tui

import "github.com/charmbracelet/bubbles/key"

// ReviewKeys are active on the review list.
type ReviewKeys struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Toggle   key.Binding
	All      key.Binding
	Filter   key.Binding
	Refresh  key.Binding
	Process  key.Binding
	Draft    key.Binding
	Quit     key.Binding
}

var reviewKeys = ReviewKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←/→", "page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "pgdown"),
		key.WithHelp("←/→", "page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "include/exclude"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "include all"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "date range"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Process: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "process payment"),
	),
	Draft: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "draft batch"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// OverlayKeys are active when the date-range form is shown.
type OverlayKeys struct {
	Apply  key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var overlayKeys = OverlayKeys{
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
