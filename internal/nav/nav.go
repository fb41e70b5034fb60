// Package nav implements the application navigation state machine:
// which view is active, the current course/lesson selection, and the
// signed-in user. Screens never navigate directly; they send actions
// through the Machine so gating rules live in one place.
package nav

import (
	"context"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/quiz"
)

// View identifies one application screen.
type View int

const (
	ViewSplash View = iota
	ViewOnboarding
	ViewLogin
	ViewRegister
	ViewForgotPassword
	ViewDashboard
	ViewSearch
	ViewCourseDetails
	ViewLessonPlayer
	ViewQuiz
	ViewQuizResults
	ViewNotifications
	ViewProfile
)

var viewNames = map[View]string{
	ViewSplash:         "splash",
	ViewOnboarding:     "onboarding",
	ViewLogin:          "login",
	ViewRegister:       "register",
	ViewForgotPassword: "forgot-password",
	ViewDashboard:      "dashboard",
	ViewSearch:         "search",
	ViewCourseDetails:  "course-details",
	ViewLessonPlayer:   "lesson-player",
	ViewQuiz:           "quiz",
	ViewQuizResults:    "quiz-results",
	ViewNotifications:  "notifications",
	ViewProfile:        "profile",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// Machine is the navigation state machine. It starts on the splash
// view. It is mutated only from the UI update loop.
type Machine struct {
	view        View
	user        *auth.User
	course      *catalog.Course
	lesson      *catalog.Lesson
	enrollments *enrollment.Store
	attempt     *quiz.Attempt
}

// NewMachine creates a machine on the splash view, backed by the given
// enrollment store.
func NewMachine(enrollments *enrollment.Store) *Machine {
	return &Machine{
		view:        ViewSplash,
		enrollments: enrollments,
		attempt:     quiz.NewAttempt(),
	}
}

// View returns the active view.
func (m *Machine) View() View { return m.view }

// User returns the signed-in user, nil before login and after logout.
func (m *Machine) User() *auth.User { return m.user }

// Course returns the currently selected course, nil when none.
func (m *Machine) Course() *catalog.Course { return m.course }

// Lesson returns the currently open lesson, nil when none.
func (m *Machine) Lesson() *catalog.Lesson { return m.lesson }

// Enrollments returns the backing enrollment store.
func (m *Machine) Enrollments() *enrollment.Store { return m.enrollments }

// Attempt returns the active quiz attempt.
func (m *Machine) Attempt() *quiz.Attempt { return m.attempt }

// Go moves to the given view without any side effects. Used for plain
// navigation: splash → onboarding, onboarding → login, back actions.
func (m *Machine) Go(v View) {
	m.view = v
}

// SetUser records a successful login and moves to the dashboard.
func (m *Machine) SetUser(u *auth.User) {
	m.user = u
	m.view = ViewDashboard
}

// Logout clears the user and returns to the login view. Enrollment
// state is untouched.
func (m *Machine) Logout() {
	m.user = nil
	m.view = ViewLogin
}

// SelectCourse sets the current course and opens its details.
func (m *Machine) SelectCourse(c *catalog.Course) {
	m.course = c
	m.view = ViewCourseDetails
}

// Enroll enrolls in the course (idempotent) and shows its details.
func (m *Machine) Enroll(ctx context.Context, c *catalog.Course) {
	m.course = c
	m.enrollments.Enroll(ctx, c.ID)
	m.view = ViewCourseDetails
}

// OpenLesson opens a lesson of the current course. An unenrolled
// course is enrolled first, so opening a lesson never dead-ends.
func (m *Machine) OpenLesson(ctx context.Context, l *catalog.Lesson) {
	if m.course == nil {
		return
	}
	if !m.enrollments.IsEnrolled(m.course.ID) {
		m.enrollments.Enroll(ctx, m.course.ID)
	}
	m.lesson = l
	m.view = ViewLessonPlayer
}

// StartQuiz resets the attempt for the given quiz and opens the quiz
// view.
func (m *Machine) StartQuiz(q *catalog.Quiz) {
	m.attempt.Start(q)
	m.view = ViewQuiz
}

// FinishQuiz moves from the quiz to the results view. A no-op unless
// the attempt is complete.
func (m *Machine) FinishQuiz() {
	if !m.attempt.Complete() {
		return
	}
	m.view = ViewQuizResults
}

// TabChange maps a bottom-tab identifier to its view. Home and courses
// share the dashboard; unknown tabs fall back to the dashboard.
func (m *Machine) TabChange(tab string) {
	switch tab {
	case "notifications":
		m.view = ViewNotifications
	case "profile":
		m.view = ViewProfile
	default:
		// "home", "courses" and anything unrecognized.
		m.view = ViewDashboard
	}
}
