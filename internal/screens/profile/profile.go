// Package profile renders the user tab: identity, learning stats and
// the achievements grid.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// ProfileScreen shows the signed-in user.
type ProfileScreen struct {
	user         *auth.User
	enrollments  *enrollment.Store
	achievements []auth.Achievement
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(user *auth.User, enrollments *enrollment.Store) *ProfileScreen {
	return &ProfileScreen{
		user:         user,
		enrollments:  enrollments,
		achievements: auth.Achievements(),
	}
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "ctrl+l" {
			return p, func() tea.Msg {
				return nav.LogoutMsg{}
			}
		}
	}
	return p, nil
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+l", Description: "log out"},
		{Key: "1-4", Description: "tabs"},
	}
}

func (p *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.user.Name) + "\n" +
		theme.Hint.Render(p.user.Email) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("◆ %d points · ★ Level %d", p.user.Points, p.user.Level))
	sections = append(sections, components.Card(head, cw))

	stats := theme.Hint.Render(fmt.Sprintf("Enrolled courses: %d", p.enrollments.Len()))
	sections = append(sections, components.Card(stats, cw))

	sections = append(sections, theme.Subtitle.Render("Achievements"))
	for _, a := range p.achievements {
		sections = append(sections, renderAchievement(a, cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderAchievement(a auth.Achievement, cw int) string {
	if a.UnlockedAt == "" {
		line := theme.Hint.Render("🔒 " + a.Title)
		return components.Card(line, cw)
	}
	line := a.Icon + " " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Title) + "\n" +
		theme.Hint.Render("unlocked "+a.UnlockedAt)
	return components.Card(line, cw)
}
