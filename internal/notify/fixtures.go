package notify

import "time"

// Fixtures returns the built-in notification feed shown to a fresh
// session.
func Fixtures() []Notification {
	now := time.Now()
	return []Notification{
		{
			ID:        "n1",
			Kind:      KindAchievement,
			Title:     "Level Up!",
			Message:   "Congratulations! You've reached Level 5.",
			Timestamp: now.Add(-2 * time.Hour),
			Read:      false,
		},
		{
			ID:        "n2",
			Kind:      KindUpdate,
			Title:     "New Course Available",
			Message:   "Check out the new Cloud Native Go course in the catalog.",
			Timestamp: now.Add(-24 * time.Hour),
			Read:      false,
		},
		{
			ID:        "n3",
			Kind:      KindReminder,
			Title:     "Study Reminder",
			Message:   "You haven't completed a lesson today. Keep your streak alive!",
			Timestamp: now.Add(-48 * time.Hour),
			Read:      true,
		},
	}
}
