package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/polka/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status icon styles
var (
	ArchivedIconStyle = lipgloss.NewStyle().
				Foreground(ColorArchived)

	CompleteIconStyle = lipgloss.NewStyle().
				Foreground(ColorComplete)

	DraftIconStyle = lipgloss.NewStyle().
			Foreground(ColorDraft)

	RecordingIconStyle = lipgloss.NewStyle().
				Foreground(ColorRecording)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(ColorTabActive).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Background(ColorTabInactive).
				Padding(0, 1)

	HistoryArrowStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Detail and transcript styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	SavingStyle = lipgloss.NewStyle().
			Foreground(ColorSaving)

	SpeakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorTimestamp)
)

// ErrorStyle renders the error banner
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError)

// StatusIcon renders the status symbol in the status color
func StatusIcon(status domain.SessionStatus) string {
	switch status {
	case domain.StatusRecording:
		return RecordingIconStyle.Render(status.Symbol())
	case domain.StatusComplete:
		return CompleteIconStyle.Render(status.Symbol())
	case domain.StatusArchived:
		return ArchivedIconStyle.Render(status.Symbol())
	default:
		return DraftIconStyle.Render(status.Symbol())
	}
}
