// Package notify holds the in-session notification feed.
package notify

import "time"

// Kind distinguishes notification styling and iconography.
type Kind string

const (
	KindAchievement Kind = "achievement"
	KindUpdate      Kind = "update"
	KindReminder    Kind = "reminder"
)

// Notification is a single feed entry.
type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}

// Feed is an ordered, in-memory notification list. It is not persisted;
// read state lasts for the session.
type Feed struct {
	items []Notification
}

// NewFeed creates a feed seeded with the given notifications.
func NewFeed(items []Notification) *Feed {
	return &Feed{items: items}
}

// Items returns the notifications, newest first.
func (f *Feed) Items() []Notification { return f.items }

// UnreadCount returns the number of unread notifications.
func (f *Feed) UnreadCount() int {
	n := 0
	for _, item := range f.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkAllRead marks every notification read. Idempotent.
func (f *Feed) MarkAllRead() {
	for i := range f.items {
		f.items[i].Read = true
	}
}
