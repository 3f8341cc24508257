package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status icon styles
var (
	PendingIconStyle = lipgloss.NewStyle().
				Foreground(ColorPending)

	ProcessingIconStyle = lipgloss.NewStyle().
				Foreground(ColorProcessing)

	CompletedIconStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted)

	FailedIconStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)
)

// Badge styles for status labels and follow-up counters
var (
	FollowUpBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	URLStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)
)

// Diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	FilenameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)
