// Package coursedetail shows one course: description, curriculum and
// the enroll action.
package coursedetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// CourseDetailScreen renders one course with its lesson list.
type CourseDetailScreen struct {
	course      *catalog.Course
	enrollments *enrollment.Store
	selected    int
}

var _ screen.Screen = (*CourseDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CourseDetailScreen)(nil)

// New creates the details screen for a course.
func New(course *catalog.Course, enrollments *enrollment.Store) *CourseDetailScreen {
	return &CourseDetailScreen{
		course:      course,
		enrollments: enrollments,
	}
}

func (c *CourseDetailScreen) Title() string {
	return c.course.Title
}

func (c *CourseDetailScreen) Init() tea.Cmd {
	return nil
}

func (c *CourseDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.course.Lessons)-1 {
			c.selected++
		}
	case "e":
		course := c.course
		return c, func() tea.Msg {
			return nav.EnrollMsg{Course: course}
		}
	case "enter":
		if c.selected < len(c.course.Lessons) {
			lesson := &c.course.Lessons[c.selected]
			return c, func() tea.Msg {
				return nav.OpenLessonMsg{Lesson: lesson}
			}
		}
	case "esc":
		return c, func() tea.Msg {
			return nav.TabMsg{Tab: "home"}
		}
	}

	return c, nil
}

func (c *CourseDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "lessons"},
		{Key: "enter", Description: "open lesson"},
	}
	if !c.enrollments.IsEnrolled(c.course.ID) {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "enroll"})
	}
	hints = append(hints, layout.KeyHint{Key: "esc", Description: "back"})
	return hints
}

func (c *CourseDetailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	price := fmt.Sprintf("$%.2f", c.course.Price)
	if c.course.IsFree {
		price = "Free"
	}

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.course.Title) + "\n" +
		theme.Hint.Render(fmt.Sprintf("%s · %s", c.course.Instructor, c.course.InstructorTitle)) + "\n" +
		theme.Hint.Render(fmt.Sprintf("★ %.1f (%d reviews) · %d students · %s",
			c.course.Rating, c.course.ReviewCount, c.course.StudentCount, price))
	sections = append(sections, components.Card(head, cw))

	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Render(c.course.Description)
	sections = append(sections, components.Card(desc, cw))

	if c.enrollments.IsEnrolled(c.course.ID) {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render("  ✓ Enrolled"))
	} else {
		sections = append(sections, theme.ButtonActive.Render("  e) Enroll now  "))
	}

	sections = append(sections, theme.Subtitle.Render("Curriculum"))
	for i, lesson := range c.course.Lessons {
		sections = append(sections, c.renderLesson(i, lesson, cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (c *CourseDetailScreen) renderLesson(i int, lesson catalog.Lesson, cw int) string {
	title := fmt.Sprintf("%d. %s", i+1, lesson.Title)
	meta := theme.Hint.Render("▶ " + lesson.Duration)
	if lesson.Quiz != nil {
		meta += theme.Hint.Render(" · quiz")
	}
	if c.enrollments.IsLessonCompleted(c.course.ID, lesson.ID) {
		meta += lipgloss.NewStyle().Foreground(theme.Success).Render(" · ✓ done")
	}

	line := lipgloss.NewStyle().Foreground(theme.Text).Render(title) + "\n" + meta
	if i == c.selected {
		return components.SelectedCard(line, cw)
	}
	return components.Card(line, cw)
}
