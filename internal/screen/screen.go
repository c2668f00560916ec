// Package screen is the contract between the router and each page of the
// TUI.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/ui/layout"
)

// Screen is one page. View draws only the body; the app adds the header
// and footer around it using Title and, when present, KeyHints.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscHandler is implemented by screens that consume Esc themselves
// instead of letting the app pop them, e.g. to confirm quitting a drill.
type EscHandler interface {
	HandlesEsc() bool
}
