// Package results shows the outcome of a finished quiz attempt with a
// per-question review.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/quiz"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// ResultsScreen summarizes a complete attempt.
type ResultsScreen struct {
	attempt *quiz.Attempt
	course  *catalog.Course
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. The course is the back target.
func New(attempt *quiz.Attempt, course *catalog.Course) *ResultsScreen {
	return &ResultsScreen{attempt: attempt, course: course}
}

func (r *ResultsScreen) Title() string {
	return "Quiz Results"
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		q := r.attempt.Quiz()
		return r, func() tea.Msg {
			return nav.StartQuizMsg{Quiz: q}
		}
	case "esc", "enter":
		course := r.course
		return r, func() tea.Msg {
			return nav.SelectCourseMsg{Course: course}
		}
	}

	return r, nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "retry"},
		{Key: "enter", Description: "back to course"},
	}
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	pct := r.attempt.Percentage()
	total := len(r.attempt.Quiz().Questions)

	var verdict string
	if r.attempt.Passed() {
		verdict = theme.Correct.Render("PASSED")
	} else {
		verdict = theme.Incorrect.Render("TRY AGAIN")
	}

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Align(lipgloss.Center).Render(
		fmt.Sprintf("%d%%", pct)) + "\n" +
		theme.Hint.Render(fmt.Sprintf("%d of %d correct", r.attempt.Score(), total)) + "\n" +
		verdict
	sections = append(sections, components.Card(head, cw))

	sections = append(sections, theme.Subtitle.Render("Review"))
	for i, item := range r.attempt.Review() {
		sections = append(sections, renderReview(i, item, cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderReview(i int, item quiz.ReviewItem, cw int) string {
	mark := theme.Correct.Render("✓")
	if !item.Correct {
		mark = theme.Incorrect.Render("✗")
	}

	given := "(no such option)"
	if item.Given >= 0 && item.Given < len(item.Question.Options) {
		given = item.Question.Options[item.Given]
	}

	line := fmt.Sprintf("%s %d. %s", mark, i+1,
		lipgloss.NewStyle().Foreground(theme.Text).Render(item.Question.Question)) + "\n" +
		theme.Hint.Render("your answer: "+given)

	if !item.Correct {
		correct := item.Question.Options[item.Question.CorrectAnswer]
		line += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("correct: "+correct)
	}

	return components.Card(line, cw)
}
