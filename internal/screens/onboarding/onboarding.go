// Package onboarding shows the feature walkthrough between splash and
// login.
package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

type slide struct {
	icon  string
	title string
	body  string
}

var slides = []slide{
	{
		icon:  "▶",
		title: "Learn from experts",
		body:  "Video lessons and study notes from industry instructors,\navailable right in your terminal.",
	},
	{
		icon:  "✎",
		title: "Test your knowledge",
		body:  "Every lesson can end with a short quiz.\nScore 70% or better to pass.",
	},
	{
		icon:  "✦",
		title: "Ask the AI tutor",
		body:  "Stuck on a concept? Open the tutor chat and ask\nquestions about the course you're studying.",
	},
}

// OnboardingScreen pages through the feature slides.
type OnboardingScreen struct {
	index int
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen on the first slide.
func New() *OnboardingScreen {
	return &OnboardingScreen{}
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if o.index > 0 {
			o.index--
		}
	case "right", "l":
		if o.index < len(slides)-1 {
			o.index++
		}
	case "enter":
		if o.index == len(slides)-1 {
			return o, func() tea.Msg {
				return nav.GoMsg{View: nav.ViewLogin}
			}
		}
		o.index++
	case "s":
		// Skip straight to login.
		return o, func() tea.Msg {
			return nav.GoMsg{View: nav.ViewLogin}
		}
	}

	return o, nil
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "slides"},
		{Key: "enter", Description: "next"},
		{Key: "s", Description: "skip"},
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	s := slides[o.index]

	var sections []string

	icon := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(s.icon)
	sections = append(sections, icon)
	sections = append(sections, "")

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.title)
	sections = append(sections, title)
	sections = append(sections, "")

	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render(s.body)
	sections = append(sections, body)
	sections = append(sections, "")

	var dots []string
	for i := range slides {
		if i == o.index {
			dots = append(dots, theme.Selected.Render("●"))
		} else {
			dots = append(dots, theme.Hint.Render("○"))
		}
	}
	sections = append(sections, strings.Join(dots, " "))

	if o.index == len(slides)-1 {
		sections = append(sections, "")
		sections = append(sections, theme.ButtonActive.Render("  Get Started  "))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
