package cli

import "github.com/charmbracelet/lipgloss"

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
	styleAmount  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// Worklog status badge styles.
var (
	badgePending  = lipgloss.NewStyle().Foreground(colorYellow)
	badgeApproved = lipgloss.NewStyle().Foreground(colorCyan)
	badgePaid     = lipgloss.NewStyle().Foreground(colorGreen)
	badgeRejected = lipgloss.NewStyle().Foreground(colorRed)
)

// Batch status badge styles.
var (
	badgeDraft     = lipgloss.NewStyle().Foreground(colorDim)
	badgeConfirmed = lipgloss.NewStyle().Foreground(colorGreen)
)
