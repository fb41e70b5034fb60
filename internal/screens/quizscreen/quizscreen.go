// Package quizscreen runs a quiz attempt question by question, with
// per-question feedback before advancing.
package quizscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/nav"
	"github.com/edustream/edustream/internal/quiz"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

// QuizScreen drives the active attempt.
type QuizScreen struct {
	attempt *quiz.Attempt
	choice  components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for an attempt that was just started.
func New(attempt *quiz.Attempt) *QuizScreen {
	q := &QuizScreen{attempt: attempt}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) loadQuestion() {
	question := q.attempt.Quiz().Questions[q.attempt.Index()]
	q.choice = components.NewMultiChoice(question.Question, question.Options, question.CorrectAnswer)
}

func (q *QuizScreen) Title() string {
	return q.attempt.Quiz().Title
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return q, nil
	}

	if q.choice.Submitted {
		// Feedback is showing; enter advances.
		if kmsg.String() == "enter" {
			if err := q.attempt.Answer(q.choice.ChosenIndex); err != nil {
				return q, nil
			}
			if q.attempt.Complete() {
				return q, func() tea.Msg {
					return nav.FinishQuizMsg{}
				}
			}
			q.loadQuestion()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	return q, cmd
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.choice.Submitted {
		return []layout.KeyHint{
			{Key: "enter", Description: "continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "options"},
		{Key: "enter", Description: "answer"},
	}
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	total := len(q.attempt.Quiz().Questions)
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.attempt.Index()+1, total),
		float64(q.attempt.Index())/float64(total),
		false,
		cw-8,
	)
	sections = append(sections, progress.View())
	sections = append(sections, "")

	sections = append(sections, components.Card(q.choice.View(), cw))

	if q.choice.Submitted {
		if q.choice.IsCorrect() {
			sections = append(sections, theme.Correct.Render("  Correct!"))
		} else {
			sections = append(sections, theme.Incorrect.Render("  Not quite."))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
