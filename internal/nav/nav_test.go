package nav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/quiz"
)

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string][]byte{}}
}

func (r *memRepo) Load(_ context.Context, name string) ([]byte, bool, error) {
	b, ok := r.data[name]
	return b, ok, nil
}

func (r *memRepo) Save(_ context.Context, name string, b []byte) error {
	r.data[name] = b
	return nil
}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	enrollments := enrollment.Open(context.Background(), newMemRepo())
	return NewMachine(enrollments)
}

func TestInitialViewIsSplash(t *testing.T) {
	m := newTestMachine(t)
	assert.Equal(t, ViewSplash, m.View())
	assert.Nil(t, m.User())
	assert.Nil(t, m.Course())
}

func TestLoginFlow(t *testing.T) {
	m := newTestMachine(t)
	m.Go(ViewOnboarding)
	m.Go(ViewLogin)

	m.SetUser(&auth.User{ID: "u1", Name: "John Doe"})
	assert.Equal(t, ViewDashboard, m.View())
	require.NotNil(t, m.User())
	assert.Equal(t, "u1", m.User().ID)
}

func TestLogoutClearsUserButKeepsEnrollments(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(t)
	m.SetUser(&auth.User{ID: "u1"})
	m.Enroll(ctx, catalog.CourseByID("3"))

	m.Logout()
	assert.Equal(t, ViewLogin, m.View())
	assert.Nil(t, m.User())
	assert.True(t, m.Enrollments().IsEnrolled("3"))
}

func TestSelectCourseOpensDetails(t *testing.T) {
	m := newTestMachine(t)
	c := catalog.CourseByID("1")

	m.SelectCourse(c)
	assert.Equal(t, ViewCourseDetails, m.View())
	assert.Same(t, c, m.Course())
	assert.False(t, m.Enrollments().IsEnrolled("1"), "selecting must not enroll")
}

func TestEnrollIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(t)
	c := catalog.CourseByID("1")

	m.Enroll(ctx, c)
	m.Enroll(ctx, c)
	assert.Equal(t, ViewCourseDetails, m.View())
	assert.Equal(t, 1, m.Enrollments().Len())
}

func TestOpenLessonEnrollsFirst(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(t)
	c := catalog.CourseByID("1")
	m.SelectCourse(c)
	require.False(t, m.Enrollments().IsEnrolled("1"))

	m.OpenLesson(ctx, &c.Lessons[0])
	assert.Equal(t, ViewLessonPlayer, m.View())
	assert.True(t, m.Enrollments().IsEnrolled("1"))
	assert.Equal(t, c.Lessons[0].ID, m.Lesson().ID)
}

func TestOpenLessonWithoutCourseIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := newTestMachine(t)
	lesson := &catalog.CourseByID("1").Lessons[0]

	m.OpenLesson(ctx, lesson)
	assert.Equal(t, ViewSplash, m.View())
	assert.Nil(t, m.Lesson())
}

func TestStartQuizResetsAttempt(t *testing.T) {
	m := newTestMachine(t)
	q := catalog.CourseByID("3").Lessons[1].Quiz
	require.NotNil(t, q)

	m.StartQuiz(q)
	require.Equal(t, ViewQuiz, m.View())
	require.NoError(t, m.Attempt().Answer(1))

	// Starting again discards the previous answers.
	m.StartQuiz(q)
	assert.Equal(t, quiz.StateInProgress, m.Attempt().State())
	assert.Equal(t, 0, m.Attempt().Index())
	assert.Empty(t, m.Attempt().Answers())
}

func TestFinishQuizRequiresCompleteAttempt(t *testing.T) {
	m := newTestMachine(t)
	q := catalog.CourseByID("1").Lessons[0].Quiz
	require.NotNil(t, q)

	m.StartQuiz(q)
	m.FinishQuiz()
	assert.Equal(t, ViewQuiz, m.View(), "incomplete attempt must stay on quiz")

	require.NoError(t, m.Attempt().Answer(1))
	require.True(t, m.Attempt().Complete())
	m.FinishQuiz()
	assert.Equal(t, ViewQuizResults, m.View())
}

func TestTabMapping(t *testing.T) {
	cases := []struct {
		tab  string
		want View
	}{
		{"home", ViewDashboard},
		{"courses", ViewDashboard},
		{"notifications", ViewNotifications},
		{"profile", ViewProfile},
		{"settings", ViewDashboard},
		{"", ViewDashboard},
	}
	for _, tc := range cases {
		t.Run(tc.tab, func(t *testing.T) {
			m := newTestMachine(t)
			m.SetUser(&auth.User{ID: "u1"})
			m.TabChange(tc.tab)
			assert.Equal(t, tc.want, m.View())
		})
	}
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "splash", ViewSplash.String())
	assert.Equal(t, "quiz-results", ViewQuizResults.String())
	assert.Equal(t, "unknown", View(99).String())
}
