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

// ForgotScreen is a navigational shell for the password-reset flow.
type ForgotScreen struct {
	email components.TextInput
	sent  bool
}

var _ screen.Screen = (*ForgotScreen)(nil)
var _ screen.KeyHintProvider = (*ForgotScreen)(nil)

// NewForgot creates the forgot-password screen.
func NewForgot() *ForgotScreen {
	return &ForgotScreen{
		email: components.NewTextInput("email", fieldWidth),
	}
}

func (s *ForgotScreen) Title() string {
	return "Reset Password"
}

func (s *ForgotScreen) Init() tea.Cmd {
	return s.email.Focus()
}

func (s *ForgotScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, goTo(nav.ViewLogin)
		case "enter":
			if s.sent {
				return s, goTo(nav.ViewLogin)
			}
			valid := strings.TrimSpace(s.email.Value()) != ""
			s.email.Submit(valid)
			if valid {
				s.sent = true
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.email, cmd = s.email.Update(msg)
	return s, cmd
}

func (s *ForgotScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "send reset link"},
		{Key: "esc", Description: "back"},
	}
}

func (s *ForgotScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("Reset Password"))
	sections = append(sections, "")

	if s.sent {
		sections = append(sections, theme.Correct.Render("Reset link sent."))
		sections = append(sections, theme.Hint.Render("Check your inbox, then sign in."))
	} else {
		sections = append(sections, theme.Hint.Render("Email"))
		sections = append(sections, s.email.View())
	}

	cw := components.ContentWidth(width)
	card := components.Card(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
