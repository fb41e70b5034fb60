// Package quiz implements the quiz attempt state machine: question
// progression, scoring and review. Attempts are ephemeral and never
// persisted.
package quiz

import (
	"errors"
	"math"

	"github.com/edustream/edustream/internal/catalog"
)

// PassThreshold is the minimum percentage (inclusive) counted as a pass.
const PassThreshold = 70

// State is the attempt lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateComplete
)

// ErrNotInProgress is returned when Answer is called outside an active
// attempt.
var ErrNotInProgress = errors.New("quiz: attempt is not in progress")

// Attempt is one pass through a quiz's question sequence.
type Attempt struct {
	quiz    *catalog.Quiz
	state   State
	index   int
	score   int
	answers []int
}

// NewAttempt creates an attempt in the not-started state.
func NewAttempt() *Attempt {
	return &Attempt{}
}

// Start begins a fresh attempt at q. Valid from any state; calling Start
// again (a retry) resets index, score and answers with no carry-over.
func (a *Attempt) Start(q *catalog.Quiz) {
	a.quiz = q
	a.state = StateInProgress
	a.index = 0
	a.score = 0
	a.answers = a.answers[:0]
}

// Answer records the selected option for the current question and
// advances. The option index is compared to the question's correct index
// by exact equality; it is not range-checked against the option count.
// Answering outside in-progress returns ErrNotInProgress and leaves the
// attempt untouched.
func (a *Attempt) Answer(optionIndex int) error {
	if a.state != StateInProgress {
		return ErrNotInProgress
	}

	a.answers = append(a.answers, optionIndex)
	if optionIndex == a.quiz.Questions[a.index].CorrectAnswer {
		a.score++
	}

	if a.index+1 < len(a.quiz.Questions) {
		a.index++
	} else {
		a.state = StateComplete
	}
	return nil
}

// State returns the attempt lifecycle state.
func (a *Attempt) State() State { return a.state }

// Quiz returns the active quiz, nil before the first Start.
func (a *Attempt) Quiz() *catalog.Quiz { return a.quiz }

// Index returns the zero-based current question index.
func (a *Attempt) Index() int { return a.index }

// Score returns the count of correct answers so far.
func (a *Attempt) Score() int { return a.score }

// Answers returns the recorded option indices in question order.
func (a *Attempt) Answers() []int { return a.answers }

// Complete reports whether every question has been answered.
func (a *Attempt) Complete() bool { return a.state == StateComplete }

// Percentage returns round(score/total*100), half-up. Zero questions
// yields 0.
func (a *Attempt) Percentage() int {
	if a.quiz == nil || len(a.quiz.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(a.score) / float64(len(a.quiz.Questions)) * 100))
}

// Passed reports whether the attempt's percentage meets PassThreshold.
func (a *Attempt) Passed() bool {
	return a.Percentage() >= PassThreshold
}

// ReviewItem pairs a question with the recorded answer at its position.
type ReviewItem struct {
	Question catalog.QuizQuestion
	Given    int
	Correct  bool
}

// Review recomputes per-question correctness from the recorded answers.
// For a complete attempt the number of correct items always equals
// Score.
func (a *Attempt) Review() []ReviewItem {
	if a.quiz == nil {
		return nil
	}
	items := make([]ReviewItem, 0, len(a.answers))
	for i, given := range a.answers {
		q := a.quiz.Questions[i]
		items = append(items, ReviewItem{
			Question: q,
			Given:    given,
			Correct:  given == q.CorrectAnswer,
		})
	}
	return items
}
