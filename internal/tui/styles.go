package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	headerRangeStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	totalsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// List styles.
var (
	rowStyle          = lipgloss.NewStyle().Foreground(colorWhite)
	excludedRowStyle  = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
	selectedRowStyle  = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
	includedMarkStyle = lipgloss.NewStyle().Foreground(colorGreen)
	excludedMarkStyle = lipgloss.NewStyle().Foreground(colorDim)
	pageStyle         = lipgloss.NewStyle().Foreground(colorDim)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorDim)
)

// Banner styles. Errors are visually distinct from an empty result.
var (
	errorBannerStyle = lipgloss.NewStyle().
				Background(colorRed).
				Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
				Bold(true).
				Padding(0, 1)

	noticeBannerStyle = lipgloss.NewStyle().
				Background(colorGreen).
				Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
				Bold(true).
				Padding(0, 1)

	confirmBarStyle = lipgloss.NewStyle().
			Background(colorYellow).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
			Bold(true).
			Padding(0, 1)
)

// Filter overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
