package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the dashboard branding
var (
	Primary   = lipgloss.Color("#1E3A5F") // Navy
	Accent    = lipgloss.Color("#E63946") // Red
	Active    = lipgloss.Color("#95E1A3") // Green
	Inactive  = lipgloss.Color("#6C757D") // Gray
	ErrorC    = lipgloss.Color("#FF6B6B")
	SuccessC  = lipgloss.Color("#95E1A3")
	InfoC     = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213E")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	AccentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	HeaderRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(Active)

	StatusInactiveStyle = lipgloss.NewStyle().
				Foreground(Inactive)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	ToastErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorC)

	ToastSuccessStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessC)

	ToastInfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoC)
)

// toastStyle returns the style for a toast kind
func toastStyle(kind toastKind) lipgloss.Style {
	switch kind {
	case toastSuccess:
		return ToastSuccessStyle
	case toastInfo:
		return ToastInfoStyle
	default:
		return ToastErrorStyle
	}
}

// statusStyle returns the style for a lead status badge
func statusStyle(active bool) lipgloss.Style {
	if active {
		return StatusActiveStyle
	}
	return StatusInactiveStyle
}
