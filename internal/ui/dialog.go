package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/polka/internal/theme"
)

// Tagline is shown under the app name in dialog headers
const Tagline = "lecture notes and transcripts"

// Dialog wraps any tea.Model content and prepends a header with a title
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog wraps content in a dialog with the given title
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{
		content: content,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the dialog as the model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View renders the header followed by the content
func (d *Dialog) View() string {
	return renderDialogHeader(d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}

func renderDialogHeader(title string) string {
	header := theme.AppNameStyle.Render("polka") + "\n" + theme.TaglineStyle.Render(Tagline)
	if title != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(title)
	}
	return header + "\n"
}
