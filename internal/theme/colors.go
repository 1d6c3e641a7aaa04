package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session status colors
const (
	ColorArchived  Color = "8" // Gray
	ColorComplete  Color = "2" // Green
	ColorDraft     Color = "3" // Yellow
	ColorRecording Color = "1" // Red - live
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Tab bar colors
const (
	ColorTabActive   Color = "236"
	ColorTabInactive Color = "234"
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow
	ColorSaving    Color = "205" // Pink
	ColorTimestamp Color = "33"  // Blue - transcript timestamps
)
