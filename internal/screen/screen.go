package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/edustream/edustream/internal/ui/layout"
)

// Screen is one view of the application. Screens are created fresh on
// every navigation; transitions are requested by returning nav messages
// from Update rather than by mutating shared state.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
