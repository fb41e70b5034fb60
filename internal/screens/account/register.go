package account

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// RegisterScreen is a navigational shell: account creation is not
// served by the mock backend, so it only points back at sign-in.
type RegisterScreen struct{}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

// NewRegister creates the register screen.
func NewRegister() *RegisterScreen {
	return &RegisterScreen{}
}

func (s *RegisterScreen) Title() string {
	return "Create Account"
}

func (s *RegisterScreen) Init() tea.Cmd {
	return nil
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, goTo(nav.ViewLogin)
		}
	}
	return s, nil
}

func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "back to sign in"},
	}
}

func (s *RegisterScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("Create Account"))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Render("Registration is handled on the web."))
	sections = append(sections, theme.Hint.Render("Use an existing account to sign in here."))

	cw := components.ContentWidth(width)
	card := components.Card(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
