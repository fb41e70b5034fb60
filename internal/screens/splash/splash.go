// Package splash shows the branded launch screen before the
// onboarding flow.
package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	splashDur    = 2500 * time.Millisecond
)

const logoArt = `  ╭─────────────╮
  │   ▶ ▶ ▶     │
  │  EduStream  │
  │     Pro     │
  ╰─────────────╯`

var pulseFrames = []string{"●", "○"}

type tickMsg time.Time

// SplashScreen plays a short animation, then moves to onboarding.
type SplashScreen struct {
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen.
func New() *SplashScreen {
	return &SplashScreen{}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.transitioned {
			return s, nil
		}
		s.elapsed += tickInterval
		s.tickCount++
		if s.elapsed >= splashDur {
			return s, s.transition()
		}
		return s, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Skipping ahead is allowed; the timer guard still holds.
		return s, s.transition()
	}

	return s, nil
}

// transition fires at most once per splash entry. A tick that arrives
// after the key-press skip must not transition again.
func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	return func() tea.Msg {
		return nav.GoMsg{View: nav.ViewOnboarding}
	}
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	logo := lipgloss.NewStyle().Foreground(theme.Primary).Render(logoArt)
	sections = append(sections, logo)
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Learn anything, anywhere")
	sections = append(sections, tagline)
	sections = append(sections, "")

	frame := pulseFrames[s.tickCount%len(pulseFrames)]
	loading := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(frame + " loading")
	sections = append(sections, loading)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
