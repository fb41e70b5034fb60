// Package catalog holds the static course catalog: courses, lessons and
// their quizzes. Catalog data is read-only reference data; per-user state
// (enrollment, lesson completion) lives in the enrollment store.
package catalog

// Level describes course difficulty.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// QuizQuestion is a single multiple-choice question. CorrectAnswer is the
// zero-based index into Options.
type QuizQuestion struct {
	ID            string
	Question      string
	Options       []string
	CorrectAnswer int
}

// Quiz is an ordered sequence of questions attached to a lesson.
type Quiz struct {
	ID        string
	Title     string
	Questions []QuizQuestion
}

// Lesson is one unit of a course curriculum. Quiz is nil for plain video
// lessons.
type Lesson struct {
	ID       string
	Title    string
	Duration string
	Content  string
	Quiz     *Quiz
}

// Course is an immutable catalog entry.
type Course struct {
	ID              string
	Title           string
	Instructor      string
	InstructorTitle string
	Description     string
	Price           float64
	IsFree          bool
	Category        string
	Rating          float64
	ReviewCount     int
	StudentCount    int
	Level           Level
	Tags            []string
	Lessons         []Lesson
}

// LessonByID returns the lesson with the given id, or nil.
func (c *Course) LessonByID(id string) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i]
		}
	}
	return nil
}
