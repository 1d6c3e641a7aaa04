package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/stores"
	"github.com/renato0307/polka/internal/theme"
)

// sortCycle is the order in which the sort key steps through fields
var sortCycle = []stores.SortField{
	stores.SortCreatedAt,
	stores.SortTitle,
	stores.SortDuration,
	stores.SortStatus,
}

// SessionItem implements list.Item and list.DefaultItem
type SessionItem struct {
	Session domain.Session
}

// FilterValue implements list.Item
func (i SessionItem) FilterValue() string {
	return i.Session.Title + " " + i.Session.Course
}

// Title implements list.DefaultItem
func (i SessionItem) Title() string {
	return i.Session.DisplayTitle()
}

// Description implements list.DefaultItem
func (i SessionItem) Description() string {
	return i.Session.Course
}

// sessionDelegate renders one session per two lines
type sessionDelegate struct{}

func (d sessionDelegate) Height() int { return 2 }

func (d sessionDelegate) Spacing() int { return 0 }

func (d sessionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d sessionDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(SessionItem)
	if !ok {
		return
	}
	s := item.Session

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}

	line1 := theme.NormalStyle.Render(fmt.Sprintf("%s %02d. ", cursor, index+1)) +
		theme.StatusIcon(s.Status) + " " +
		theme.NormalStyle.Render(s.DisplayTitle())
	if s.DurationMs > 0 {
		line1 += " " + theme.MutedStyle.Render("["+domain.FormatDuration(s.DurationMs)+"]")
	}

	line2 := "        " + theme.MutedStyle.Render(time.Unix(s.CreatedAt, 0).Format("2006-01-02 15:04"))
	if s.Course != "" {
		line2 += theme.MutedStyle.Render(" | " + s.Course)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// listScope selects which sessions a list shows
type listScope int

const (
	scopeActive listScope = iota
	scopeAll
	scopeArchived
)

func (s listScope) includes(session domain.Session) bool {
	switch s {
	case scopeActive:
		return !session.IsArchived()
	case scopeArchived:
		return session.IsArchived()
	default:
		return true
	}
}

// SessionList is a filtered, sorted list of sessions
type SessionList struct {
	list  list.Model
	query stores.Query
	scope listScope
	title string
}

// NewSessionList creates a list showing the sessions in scope
func NewSessionList(title string, scope listScope) *SessionList {
	l := list.New(nil, sessionDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.TitleStyle
	l.SetStatusBarItemName("session", "sessions")

	sl := &SessionList{
		list:  l,
		scope: scope,
		title: title,
	}
	sl.refreshTitle()
	return sl
}

func (sl *SessionList) refreshTitle() {
	sl.list.Title = sl.title + "  " + sl.SortLabel()
}

// SetSessions replaces the items, keeping the selection on the same session when possible
func (sl *SessionList) SetSessions(sessions []domain.Session) tea.Cmd {
	selected := sl.SelectedID()

	visible := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if sl.scope.includes(s) {
			visible = append(visible, s)
		}
	}
	visible = sl.query.Apply(visible)

	items := make([]list.Item, len(visible))
	index := 0
	for i, s := range visible {
		items[i] = SessionItem{Session: s}
		if s.ID == selected {
			index = i
		}
	}
	cmd := sl.list.SetItems(items)
	sl.list.Select(index)
	return cmd
}

// SelectedID returns the id of the selected session, or ""
func (sl *SessionList) SelectedID() string {
	if item, ok := sl.list.SelectedItem().(SessionItem); ok {
		return item.Session.ID
	}
	return ""
}

// Selected returns the selected session
func (sl *SessionList) Selected() (domain.Session, bool) {
	item, ok := sl.list.SelectedItem().(SessionItem)
	if !ok {
		return domain.Session{}, false
	}
	return item.Session, true
}

// Filtering reports whether the filter input has focus
func (sl *SessionList) Filtering() bool {
	return sl.list.FilterState() == list.Filtering
}

// CycleSort steps to the next sort field
func (sl *SessionList) CycleSort() {
	for i, f := range sortCycle {
		if f == sl.sortField() {
			sl.query.SortBy = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	sl.refreshTitle()
}

// ReverseOrder flips between ascending and descending
func (sl *SessionList) ReverseOrder() {
	if sl.query.Order == stores.OrderAsc {
		sl.query.Order = stores.OrderDesc
	} else {
		sl.query.Order = stores.OrderAsc
	}
	sl.refreshTitle()
}

func (sl *SessionList) sortField() stores.SortField {
	if sl.query.SortBy == "" {
		return stores.SortCreatedAt
	}
	return sl.query.SortBy
}

// SortLabel describes the current ordering
func (sl *SessionList) SortLabel() string {
	order := sl.query.Order
	if order == "" {
		order = stores.OrderDesc
	}
	return fmt.Sprintf("sort: %s %s", sl.sortField(), order)
}

// SetSize sets the list dimensions
func (sl *SessionList) SetSize(width, height int) {
	sl.list.SetSize(width, height)
}

// Update forwards a message to the bubbles list
func (sl *SessionList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	sl.list, cmd = sl.list.Update(msg)
	return cmd
}

// View renders the list
func (sl *SessionList) View() string {
	return sl.list.View()
}
