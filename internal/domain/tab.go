package domain

// TabIcon is the symbolic name of a tab icon
type TabIcon string

const (
	IconArchive       TabIcon = "Archive"
	IconFileText      TabIcon = "FileText"
	IconHome          TabIcon = "Home"
	IconLibrary       TabIcon = "Library"
	IconMessageCircle TabIcon = "MessageCircle"
	IconSettings      TabIcon = "Settings"
)

// Glyph resolves the icon to a terminal-friendly character
func (i TabIcon) Glyph() string {
	switch i {
	case IconHome:
		return "⌂"
	case IconFileText:
		return "≡"
	case IconMessageCircle:
		return "✎"
	case IconLibrary:
		return "▤"
	case IconArchive:
		return "▣"
	case IconSettings:
		return "⚙"
	default:
		return "·"
	}
}

// HomeTabID is the id of the permanent home tab
const HomeTabID = "home"

// Tab is one entry in the tab bar
type Tab struct {
	Closable bool
	Icon     TabIcon
	ID       string
	Path     string
	Title    string
}

// HomeTab returns the non-closable tab every tab bar starts with
func HomeTab() Tab {
	return Tab{
		Closable: false,
		Icon:     IconHome,
		ID:       HomeTabID,
		Path:     PathHome,
		Title:    "Home",
	}
}
