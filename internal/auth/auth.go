// Package auth defines the user identity types shared by the API client
// and the UI.
package auth

// Role is the user's platform role.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// Achievement is a profile badge. UnlockedAt is empty while locked.
type Achievement struct {
	ID         string
	Title      string
	Icon       string
	UnlockedAt string
}

// User is the authenticated account.
type User struct {
	ID              string
	Name            string
	Email           string
	Role            Role
	EnrolledCourses []string
	Points          int
	Level           int
	Achievements    []Achievement
}

// Credentials are the login form inputs.
type Credentials struct {
	Email    string
	Password string
}

// Achievements returns the built-in achievement fixtures attached to a
// freshly authenticated user.
func Achievements() []Achievement {
	return []Achievement{
		{ID: "a1", Title: "Early Bird", Icon: "🌅", UnlockedAt: "2024-03-01"},
		{ID: "a2", Title: "Quiz Master", Icon: "🧠", UnlockedAt: "2024-03-05"},
		{ID: "a3", Title: "Consistent Learner", Icon: "🔥"},
	}
}
