// Package dashboard is the main course-browsing screen: greeting,
// level banner, search and the course list.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// DashboardScreen lists the catalog with inline search.
type DashboardScreen struct {
	user        *auth.User
	enrollments *enrollment.Store
	courses     []catalog.Course
	search      components.TextInput
	searching   bool
	selected    int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard for the signed-in user.
func New(user *auth.User, enrollments *enrollment.Store, courses []catalog.Course) *DashboardScreen {
	return &DashboardScreen{
		user:        user,
		enrollments: enrollments,
		courses:     courses,
		search:      components.NewTextInput("search courses", 40),
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

// CapturesInput reports whether the search field is consuming
// keystrokes, so global shortcuts stand down.
func (d *DashboardScreen) CapturesInput() bool {
	return d.searching
}

// filtered returns the courses matching the search query by title or
// tag, case-insensitive. An empty query matches everything.
func (d *DashboardScreen) filtered() []*catalog.Course {
	query := strings.ToLower(strings.TrimSpace(d.search.Value()))
	out := make([]*catalog.Course, 0, len(d.courses))
	for i := range d.courses {
		c := &d.courses[i]
		if query == "" || matches(c, query) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c *catalog.Course, query string) bool {
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if d.searching {
			var cmd tea.Cmd
			d.search, cmd = d.search.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if d.searching {
		switch kmsg.String() {
		case "esc":
			d.searching = false
			d.search.Blur()
			return d, nil
		case "enter":
			d.searching = false
			d.search.Blur()
			d.selected = 0
			return d, nil
		}
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		d.selected = 0
		return d, cmd
	}

	list := d.filtered()

	switch kmsg.String() {
	case "/":
		d.searching = true
		return d, d.search.Focus()
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(list)-1 {
			d.selected++
		}
	case "enter":
		if d.selected < len(list) {
			course := list[d.selected]
			return d, func() tea.Msg {
				return nav.SelectCourseMsg{Course: course}
			}
		}
	}

	return d, nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.searching {
		return []layout.KeyHint{
			{Key: "enter", Description: "apply"},
			{Key: "esc", Description: "cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "select"},
		{Key: "enter", Description: "open course"},
		{Key: "/", Description: "search"},
		{Key: "1-4", Description: "tabs"},
	}
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Hello, %s 👋", d.user.Name))
	sub := theme.Hint.Render("What do you want to learn today?")
	sections = append(sections, greeting+"\n"+sub)

	levelBar := components.NewProgressBar(
		fmt.Sprintf("Level %d", d.user.Level),
		float64(d.user.Points%1000)/1000,
		false,
		cw-8,
	)
	banner := fmt.Sprintf("%s\n%s",
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("◆ %d points", d.user.Points)),
		levelBar.View(),
	)
	sections = append(sections, components.Card(banner, cw))

	if d.searching || d.search.Value() != "" {
		sections = append(sections, theme.Hint.Render("Search: ")+d.search.View())
	}

	list := d.filtered()
	if len(list) == 0 {
		sections = append(sections, theme.Hint.Render("No courses match your search."))
	}
	for i, c := range list {
		sections = append(sections, d.renderCourse(c, i == d.selected, cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (d *DashboardScreen) renderCourse(c *catalog.Course, selected bool, cw int) string {
	price := fmt.Sprintf("$%.2f", c.Price)
	if c.IsFree {
		price = "Free"
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title)
	meta := theme.Hint.Render(fmt.Sprintf("%s · %s · ★ %.1f · %s", c.Instructor, c.Level, c.Rating, price))

	line := title + "\n" + meta
	if d.enrollments.IsEnrolled(c.ID) {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render("✓ Enrolled")
	}

	if selected {
		return components.SelectedCard(line, cw)
	}
	return components.Card(line, cw)
}
