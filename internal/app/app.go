// Package app wires the navigation machine, the screens and the tutor
// overlay into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/api"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/llm"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/notify"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/screens/account"
	"github.com/edustream/edustream/internal/screens/chatpanel"
	"github.com/edustream/edustream/internal/screens/coursedetail"
	"github.com/edustream/edustream/internal/screens/dashboard"
	"github.com/edustream/edustream/internal/screens/lesson"
	"github.com/edustream/edustream/internal/screens/notifications"
	"github.com/edustream/edustream/internal/screens/onboarding"
	"github.com/edustream/edustream/internal/screens/profile"
	"github.com/edustream/edustream/internal/screens/quizscreen"
	"github.com/edustream/edustream/internal/screens/results"
	"github.com/edustream/edustream/internal/screens/splash"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
)

// defaultChatTopic is used when no course is selected.
const defaultChatTopic = "General Learning"

// inputCapturer is implemented by screens that take raw text input, so
// global key shortcuts stand down while the user is typing.
type inputCapturer interface {
	CapturesInput() bool
}

// Deps carries the shared services the UI runs on.
type Deps struct {
	Client      api.Client
	Enrollments *enrollment.Store
	Provider    llm.Provider
	Feed        *notify.Feed
	Courses     []catalog.Course
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    Deps
	machine *nav.Machine
	active  screen.Screen
	chat    *chatpanel.ChatPanel
	width   int
	height  int
}

func newAppModel(deps Deps) AppModel {
	m := AppModel{
		deps:    deps,
		machine: nav.NewMachine(deps.Enrollments),
	}
	m.active = m.screenFor(m.machine.View())
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

// screenFor builds a fresh screen for the machine's current view.
// Screens are recreated on every transition, which gives each entry
// its own timer and selection state.
func (m *AppModel) screenFor(v nav.View) screen.Screen {
	switch v {
	case nav.ViewSplash:
		return splash.New()
	case nav.ViewOnboarding:
		return onboarding.New()
	case nav.ViewLogin:
		return account.NewLogin(m.deps.Client)
	case nav.ViewRegister:
		return account.NewRegister()
	case nav.ViewForgotPassword:
		return account.NewForgot()
	case nav.ViewDashboard, nav.ViewSearch:
		return dashboard.New(m.machine.User(), m.deps.Enrollments, m.deps.Courses)
	case nav.ViewCourseDetails:
		return coursedetail.New(m.machine.Course(), m.deps.Enrollments)
	case nav.ViewLessonPlayer:
		return lesson.New(m.machine.Course(), m.machine.Lesson(), m.deps.Enrollments, m.deps.Client)
	case nav.ViewQuiz:
		return quizscreen.New(m.machine.Attempt())
	case nav.ViewQuizResults:
		return results.New(m.machine.Attempt(), m.machine.Course())
	case nav.ViewNotifications:
		return notifications.New(m.deps.Feed)
	case nav.ViewProfile:
		return profile.New(m.machine.User(), m.deps.Enrollments)
	default:
		return splash.New()
	}
}

// enter swaps in the screen for the machine's current view.
func (m *AppModel) enter() tea.Cmd {
	m.active = m.screenFor(m.machine.View())
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.GoMsg:
		m.machine.Go(msg.View)
		return m, m.enter()

	case nav.LoggedInMsg:
		m.machine.SetUser(msg.User)
		return m, m.enter()

	case nav.LogoutMsg:
		m.closeChat()
		m.machine.Logout()
		return m, m.enter()

	case nav.SelectCourseMsg:
		m.machine.SelectCourse(msg.Course)
		return m, m.enter()

	case nav.EnrollMsg:
		m.machine.Enroll(context.Background(), msg.Course)
		return m, m.enter()

	case nav.OpenLessonMsg:
		m.machine.OpenLesson(context.Background(), msg.Lesson)
		return m, m.enter()

	case nav.StartQuizMsg:
		m.machine.StartQuiz(msg.Quiz)
		return m, m.enter()

	case nav.FinishQuizMsg:
		m.machine.FinishQuiz()
		return m, m.enter()

	case nav.TabMsg:
		m.machine.TabChange(msg.Tab)
		return m, m.enter()

	case nav.ToggleChatMsg:
		return m, m.toggleChat()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			if m.machine.User() != nil {
				return m, m.toggleChat()
			}
		}
		if m.chat == nil && !m.screenCapturesInput() {
			if tab, ok := tabKey(msg.String()); ok && m.onTabView() {
				m.machine.TabChange(tab)
				return m, m.enter()
			}
		}
	}

	// The open overlay sees all input; the underlying screen resumes
	// when it closes.
	if m.chat != nil {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m *AppModel) toggleChat() tea.Cmd {
	if m.chat != nil {
		m.closeChat()
		return nil
	}
	topic := defaultChatTopic
	if c := m.machine.Course(); c != nil {
		topic = c.Title
	}
	m.chat = chatpanel.New(topic, m.deps.Provider)
	return m.chat.Init()
}

func (m *AppModel) closeChat() {
	if m.chat != nil {
		m.chat.Close()
		m.chat = nil
	}
}

func (m *AppModel) screenCapturesInput() bool {
	if c, ok := m.active.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}

// onTabView reports whether the bottom tab bar applies to the current
// view.
func (m *AppModel) onTabView() bool {
	switch m.machine.View() {
	case nav.ViewDashboard, nav.ViewNotifications, nav.ViewProfile:
		return m.machine.User() != nil
	}
	return false
}

func tabKey(key string) (string, bool) {
	switch key {
	case "1":
		return "home", true
	case "2":
		return "courses", true
	case "3":
		return "notifications", true
	case "4":
		return "profile", true
	}
	return "", false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	points, level := 0, 0
	if u := m.machine.User(); u != nil {
		points, level = u.Points, u.Level
	}
	header := layout.RenderHeader(m.headerTitle(), points, level, m.width)

	footer := m.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.chat != nil {
		content = m.chat.View(m.width, contentHeight)
	} else {
		content = m.active.View(m.width, contentHeight)
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

func (m AppModel) headerTitle() string {
	if m.chat != nil {
		return "AI Tutor"
	}
	return m.active.Title()
}

func (m AppModel) renderFooter() string {
	if m.onTabView() && m.chat == nil {
		bar := components.NewTabBar([]components.Tab{
			{ID: "home", Label: "1 Home"},
			{ID: "courses", Label: "2 Courses"},
			{ID: "notifications", Label: "3 Alerts", Badge: m.deps.Feed.UnreadCount()},
			{ID: "profile", Label: "4 Profile"},
		})
		bar.ActiveID = m.activeTabID()
		return bar.View(m.width)
	}

	hints := []layout.KeyHint{}
	if m.chat != nil {
		hints = append(hints, m.chat.KeyHints()...)
	} else if provider, ok := m.active.(screen.KeyHintProvider); ok {
		hints = append(hints, provider.KeyHints()...)
	}
	if m.machine.User() != nil && m.chat == nil {
		hints = append(hints, layout.KeyHint{Key: "ctrl+a", Description: "tutor"})
	}
	hints = append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})
	return layout.RenderFooter(hints, m.width)
}

func (m AppModel) activeTabID() string {
	switch m.machine.View() {
	case nav.ViewNotifications:
		return "notifications"
	case nav.ViewProfile:
		return "profile"
	default:
		return "home"
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
