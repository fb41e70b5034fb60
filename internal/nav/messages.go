package nav

import (
	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
)

// Navigation messages. Screens emit these as tea messages; the root
// model applies them to the Machine and swaps the active screen.

// GoMsg requests a plain transition to a view.
type GoMsg struct {
	View View
}

// LoggedInMsg reports a successful login.
type LoggedInMsg struct {
	User *auth.User
}

// LogoutMsg requests sign-out.
type LogoutMsg struct{}

// SelectCourseMsg opens a course's details.
type SelectCourseMsg struct {
	Course *catalog.Course
}

// EnrollMsg enrolls in a course and opens its details.
type EnrollMsg struct {
	Course *catalog.Course
}

// OpenLessonMsg opens a lesson of the current course.
type OpenLessonMsg struct {
	Lesson *catalog.Lesson
}

// StartQuizMsg starts a quiz attempt.
type StartQuizMsg struct {
	Quiz *catalog.Quiz
}

// FinishQuizMsg moves a complete attempt to the results view.
type FinishQuizMsg struct{}

// TabMsg switches bottom tabs by identifier.
type TabMsg struct {
	Tab string
}

// ToggleChatMsg opens or closes the tutor chat overlay.
type ToggleChatMsg struct{}
