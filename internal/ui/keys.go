package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Notes       NotesKeys
	Session     SessionKeys
}

// ApplicationKeys are available in every view
type ApplicationKeys struct {
	DismissError key.Binding
	ForceQuit    key.Binding
	Quit         key.Binding
}

// NavigationKeys move between tabs and through history
type NavigationKeys struct {
	Archive  key.Binding
	Back     key.Binding
	CloseTab key.Binding
	Forward  key.Binding
	Home     key.Binding
	Library  key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Settings key.Binding
}

// SessionKeys act on the selected or shown session
type SessionKeys struct {
	Delete     key.Binding
	New        key.Binding
	Notes      key.Binding
	Open       key.Binding
	Reverse    key.Binding
	Search     key.Binding
	SetStatus  key.Binding
	Sort       key.Binding
	Transcript key.Binding
}

// NotesKeys apply while the notes editor has focus
type NotesKeys struct {
	Leave key.Binding
	Save  key.Binding
}

// NewKeyMap creates the default key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			DismissError: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
			ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
			Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		},
		Navigation: NavigationKeys{
			Archive:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
			Back:     key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "back")),
			CloseTab: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
			Forward:  key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "forward")),
			Home:     key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
			Library:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "library")),
			NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
			PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
			Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		},
		Notes: NotesKeys{
			Leave: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
			Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save now")),
		},
		Session: SessionKeys{
			Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
			Notes:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "notes")),
			Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
			Reverse:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse order")),
			Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			SetStatus:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
			Sort:       key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort by")),
			Transcript: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transcript")),
		},
	}
}

// ListHelp returns the bindings shown under session lists
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{
		k.Session.Open,
		k.Session.New,
		k.Session.Notes,
		k.Session.Transcript,
		k.Session.SetStatus,
		k.Session.Delete,
		k.Session.Search,
		k.Navigation.NextTab,
		k.Application.Quit,
	}
}

// DetailHelp returns the bindings shown under a single session
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{
		k.Session.Notes,
		k.Session.Transcript,
		k.Session.SetStatus,
		k.Session.Delete,
		k.Navigation.Back,
		k.Navigation.CloseTab,
		k.Application.Quit,
	}
}

// NotesHelp returns the bindings shown under the notes editor
func (k KeyMap) NotesHelp() []key.Binding {
	return []key.Binding{
		k.Notes.Save,
		k.Notes.Leave,
		k.Navigation.CloseTab,
		k.Application.ForceQuit,
	}
}
