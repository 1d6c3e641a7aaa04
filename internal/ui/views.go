package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/stores"
	"github.com/renato0307/polka/internal/theme"
)

// SettingRow is one line of the settings view
type SettingRow struct {
	Key    string
	Source string // flag, env, settings.json or default
	Value  string
}

// renderTabBar draws the tabs with the active one highlighted, plus history arrows
func renderTabBar(st stores.TabsState, width int) string {
	back := " "
	if st.HistoryIndex > 0 {
		back = "‹"
	}
	forward := " "
	if st.HistoryIndex < len(st.History)-1 {
		forward = "›"
	}

	parts := []string{theme.HistoryArrowStyle.Render(back + forward)}
	for _, tab := range st.Tabs {
		label := tab.Icon.Glyph() + " " + tab.Title
		if tab.Closable {
			label += " ×"
		}
		if tab.ID == st.ActiveTabID {
			parts = append(parts, theme.ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, theme.InactiveTabStyle.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width > 0 && lipgloss.Width(bar) > width {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}

// renderSessionDetail shows the metadata of one session
func renderSessionDetail(s domain.Session) string {
	row := func(label, value string) string {
		return theme.LabelStyle.Render(label) + theme.NormalStyle.Render(value)
	}
	optional := func(p *string) string {
		if p == nil {
			return "-"
		}
		return *p
	}
	course := s.Course
	if course == "" {
		course = "-"
	}

	lines := []string{
		theme.TitleStyle.Render(s.DisplayTitle()),
		row("Status", theme.StatusIcon(s.Status)+" "+string(s.Status)),
		row("Course", course),
		row("Created", time.Unix(s.CreatedAt, 0).Format("2006-01-02 15:04")),
		row("Duration", domain.FormatDuration(s.DurationMs)),
		row("Notes", optional(s.NotesPath)),
		row("Transcript", optional(s.TranscriptPath)),
		row("Audio", optional(s.AudioPath)),
		row("ID", s.ID),
	}
	return strings.Join(lines, "\n")
}

// renderSettings lists the effective settings and where each came from
func renderSettings(rows []SettingRow) string {
	lines := []string{theme.TitleStyle.Render("Settings")}
	for _, r := range rows {
		value := r.Value
		if value == "" {
			value = "-"
		}
		lines = append(lines, theme.LabelStyle.Width(22).Render(r.Key)+
			theme.NormalStyle.Render(value)+" "+
			theme.MutedStyle.Render("("+r.Source+")"))
	}
	lines = append(lines, "", theme.MutedStyle.Render("Edit settings.json in POLKA_HOME to change these."))
	return strings.Join(lines, "\n")
}
