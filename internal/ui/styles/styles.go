// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Passed rounds
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Failed rounds

	// Accent used for key caps, the timer, and the active command name.
	AccentColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}

	// Edit view colors
	CursorColor      = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	SelectionBgColor = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#3B4261"}
	BorderColor      = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Instruction line above the edit buffer.
	InstructionStyle = lipgloss.NewStyle().
				Foreground(TextPrimaryColor).
				Bold(true)

	// Key caps shown in the command reference and on a miss.
	KeyCapStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Edit buffer frame.
	BufferStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)

	// Cursor block inside the edit buffer.
	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(CursorColor)

	// Selected text inside the edit buffer.
	SelectionStyle = lipgloss.NewStyle().
			Background(SelectionBgColor)

	// Round feedback
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	FailStyle    = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Help footer
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
func ApplyTheme(highlight, subtle, errorColor, success, cursor, selection string) {
	if highlight != "" {
		AccentColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		KeyCapStyle = KeyCapStyle.Foreground(AccentColor)
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		BorderColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		HelpStyle = HelpStyle.Foreground(TextMutedColor)
		BufferStyle = BufferStyle.BorderForeground(BorderColor)
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
		FailStyle = FailStyle.Foreground(StatusErrorColor)
		ErrorStyle = ErrorStyle.Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		SuccessStyle = SuccessStyle.Foreground(StatusSuccessColor)
	}
	if cursor != "" {
		CursorColor = lipgloss.AdaptiveColor{Light: cursor, Dark: cursor}
		CursorStyle = CursorStyle.Background(CursorColor)
	}
	if selection != "" {
		SelectionBgColor = lipgloss.AdaptiveColor{Light: selection, Dark: selection}
		SelectionStyle = SelectionStyle.Background(SelectionBgColor)
	}
}
