// Package account holds the authentication screens: login, register
// and forgot-password. Register and forgot-password are navigational
// shells; only login performs a real (mocked) request.
package account

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/api"
	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

const fieldWidth = 40

type loginResultMsg struct {
	User *auth.User
	Err  error
}

// LoginScreen is the sign-in form.
type LoginScreen struct {
	client     api.Client
	email      components.TextInput
	password   components.TextInput
	focus      int
	submitting bool
	errText    string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// NewLogin creates the login form backed by the given API client.
func NewLogin(client api.Client) *LoginScreen {
	s := &LoginScreen{
		client:   client,
		email:    components.NewTextInput("email", fieldWidth),
		password: components.NewPasswordInput("password", fieldWidth),
	}
	return s
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Focus()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.submitting = false
		if msg.Err != nil {
			if errors.Is(msg.Err, api.ErrInvalidCredentials) {
				s.errText = "Invalid email or password."
			} else {
				s.errText = "Sign-in failed. Please try again."
			}
			return s, nil
		}
		user := msg.User
		return s, func() tea.Msg {
			return nav.LoggedInMsg{User: user}
		}

	case tea.KeyPressMsg:
		if s.submitting {
			return s, nil
		}

		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "enter":
			if s.focus < 1 {
				return s, s.setFocus(s.focus + 1)
			}
			return s, s.submit()
		case "ctrl+r":
			return s, goTo(nav.ViewRegister)
		case "ctrl+f":
			return s, goTo(nav.ViewForgotPassword)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case 0:
		s.email, cmd = s.email.Update(msg)
	case 1:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = 1
	}
	if i > 1 {
		i = 0
	}
	s.focus = i
	s.email.Blur()
	s.password.Blur()
	if i == 0 {
		return s.email.Focus()
	}
	return s.password.Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	creds := auth.Credentials{
		Email:    strings.TrimSpace(s.email.Value()),
		Password: s.password.Value(),
	}
	s.submitting = true
	s.errText = ""

	client := s.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), creds)
		if err != nil {
			return loginResultMsg{Err: err}
		}
		return loginResultMsg{User: &resp.User}
	}
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "next field"},
		{Key: "enter", Description: "sign in"},
		{Key: "ctrl+r", Description: "register"},
		{Key: "ctrl+f", Description: "forgot password"},
	}
}

func (s *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Welcome back"))
	sections = append(sections, theme.Subtitle.Render("Sign in to continue learning"))
	sections = append(sections, "")

	sections = append(sections, fieldLabel("Email", s.focus == 0))
	sections = append(sections, s.email.View())
	sections = append(sections, "")
	sections = append(sections, fieldLabel("Password", s.focus == 1))
	sections = append(sections, s.password.View())
	sections = append(sections, "")

	signIn := components.NewButton("Sign In", s.focus == 1 && !s.submitting, nil)
	sections = append(sections, signIn.View())
	sections = append(sections, "")

	if s.submitting {
		sections = append(sections, theme.Hint.Render("signing in..."))
	} else if s.errText != "" {
		sections = append(sections, theme.Incorrect.Render(s.errText))
	}

	cw := components.ContentWidth(width)
	card := components.Card(strings.Join(sections, "\n"), cw)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return theme.Selected.Render(name)
	}
	return theme.Hint.Render(name)
}

func goTo(v nav.View) tea.Cmd {
	return func() tea.Msg {
		return nav.GoMsg{View: v}
	}
}
