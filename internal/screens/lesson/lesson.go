// Package lesson is the lesson player: study notes, completion and
// the quiz entry point.
package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/api"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

type progressSyncedMsg struct {
	Err error
}

// LessonScreen plays one lesson of the current course.
type LessonScreen struct {
	course      *catalog.Course
	lesson      *catalog.Lesson
	enrollments *enrollment.Store
	client      api.Client
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the player for a lesson of the given course.
func New(course *catalog.Course, lesson *catalog.Lesson, enrollments *enrollment.Store, client api.Client) *LessonScreen {
	return &LessonScreen{
		course:      course,
		lesson:      lesson,
		enrollments: enrollments,
		client:      client,
	}
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressSyncedMsg:
		// Progress sync is fire-and-forget; a failure changes nothing
		// locally.
		return l, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "c":
			return l, l.complete()
		case "q":
			if l.lesson.Quiz != nil {
				quiz := l.lesson.Quiz
				return l, func() tea.Msg {
					return nav.StartQuizMsg{Quiz: quiz}
				}
			}
		case "esc":
			course := l.course
			return l, func() tea.Msg {
				return nav.SelectCourseMsg{Course: course}
			}
		}
	}

	return l, nil
}

// complete records the lesson locally, then syncs progress to the
// backend in the background.
func (l *LessonScreen) complete() tea.Cmd {
	if l.enrollments.IsLessonCompleted(l.course.ID, l.lesson.ID) {
		return nil
	}
	l.enrollments.CompleteLesson(context.Background(), l.course.ID, l.lesson.ID)

	client := l.client
	courseID, lessonID := l.course.ID, l.lesson.ID
	return func() tea.Msg {
		err := client.UpdateProgress(context.Background(), courseID, lessonID)
		return progressSyncedMsg{Err: err}
	}
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if !l.enrollments.IsLessonCompleted(l.course.ID, l.lesson.ID) {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "mark complete"})
	}
	if l.lesson.Quiz != nil {
		hints = append(hints, layout.KeyHint{Key: "q", Description: "take quiz"})
	}
	hints = append(hints, layout.KeyHint{Key: "esc", Description: "back to course"})
	return hints
}

func (l *LessonScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	player := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(cw - 6).
		Render(fmt.Sprintf("▶ ────────────────── %s", l.lesson.Duration))
	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(l.lesson.Title) + "\n" + player
	sections = append(sections, components.Card(head, cw))

	notes := theme.Subtitle.Render("Study Notes") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(l.lesson.Content)
	sections = append(sections, components.Card(notes, cw))

	if l.enrollments.IsLessonCompleted(l.course.ID, l.lesson.ID) {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ Lesson complete"))
	}

	if l.lesson.Quiz != nil {
		quizLine := lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("✎ %s (%d questions)  press q to start", l.lesson.Quiz.Title, len(l.lesson.Quiz.Questions)))
		sections = append(sections, quizLine)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
