package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/polka/internal/domain"
)

// SessionFormResult contains the result of the new session form
type SessionFormResult struct {
	Cancelled bool
	Request   domain.CreateSessionRequest
}

// SessionForm asks for the title and course of a new session
type SessionForm struct {
	Completed bool
	form      *huh.Form
	result    SessionFormResult
}

// NewSessionForm creates the new session form
func NewSessionForm() *SessionForm {
	sf := &SessionForm{}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Linear Algebra, lecture 3").
				Value(&sf.result.Request.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return domain.ErrEmptyTitle
					}
					return nil
				}),
			huh.NewInput().
				Title("Course").
				Description("Optional").
				Value(&sf.result.Request.Course),
		),
	)

	return sf
}

func (sf *SessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SessionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.result.Request.Normalize()
		sf.Completed = true
		return sf, nil
	}

	return sf, cmd
}

func (sf *SessionForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *SessionForm) Result() SessionFormResult {
	return sf.result
}

// StatusFormResult contains the result of the status picker
type StatusFormResult struct {
	Cancelled bool
	Request   domain.UpdateSessionStatusRequest
}

// StatusForm lets the user pick a new status for one session
type StatusForm struct {
	Completed bool
	form      *huh.Form
	result    StatusFormResult
}

// NewStatusForm creates a status picker preselected on the current status
func NewStatusForm(session domain.Session) *StatusForm {
	sf := &StatusForm{
		result: StatusFormResult{
			Request: domain.UpdateSessionStatusRequest{ID: session.ID, Status: session.Status},
		},
	}

	options := make([]huh.Option[domain.SessionStatus], 0, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		options = append(options, huh.NewOption(status.Symbol()+" "+string(status), status))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.SessionStatus]().
				Title("Set status").
				Description("Session: " + session.DisplayTitle()).
				Options(options...).
				Value(&sf.result.Request.Status),
		),
	)

	return sf
}

func (sf *StatusForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *StatusForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		return sf, nil
	}

	return sf, cmd
}

func (sf *StatusForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *StatusForm) Result() StatusFormResult {
	return sf.result
}

// newDeleteConfirmForm asks before deleting a session and its folder
func newDeleteConfirmForm(session domain.Session, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete \"" + session.DisplayTitle() + "\"?").
				Description("Notes and transcript are removed from disk.").
				Value(confirmed).
				Affirmative("Delete").
				Negative("Keep"),
		),
	)
}
