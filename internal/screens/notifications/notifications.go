// Package notifications renders the notification feed tab.
package notifications

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/notify"
	"github.com/edustream/edustream/internal/screen"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

var kindIcons = map[notify.Kind]string{
	notify.KindAchievement: "🏆",
	notify.KindUpdate:      "📚",
	notify.KindReminder:    "⏰",
}

// NotificationsScreen lists the feed and offers mark-all-read.
type NotificationsScreen struct {
	feed *notify.Feed
}

var _ screen.Screen = (*NotificationsScreen)(nil)
var _ screen.KeyHintProvider = (*NotificationsScreen)(nil)

// New creates the notifications screen over the shared feed.
func New(feed *notify.Feed) *NotificationsScreen {
	return &NotificationsScreen{feed: feed}
}

func (n *NotificationsScreen) Title() string {
	return "Notifications"
}

func (n *NotificationsScreen) Init() tea.Cmd {
	return nil
}

func (n *NotificationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "m" {
			n.feed.MarkAllRead()
		}
	}
	return n, nil
}

func (n *NotificationsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if n.feed.UnreadCount() > 0 {
		hints = append(hints, layout.KeyHint{Key: "m", Description: "mark all read"})
	}
	hints = append(hints, layout.KeyHint{Key: "1-4", Description: "tabs"})
	return hints
}

func (n *NotificationsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	if unread := n.feed.UnreadCount(); unread > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d unread", unread)))
	}

	items := n.feed.Items()
	if len(items) == 0 {
		sections = append(sections, theme.Hint.Render("Nothing here yet."))
	}

	for _, item := range items {
		sections = append(sections, renderItem(item, cw))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderItem(item notify.Notification, cw int) string {
	icon := kindIcons[item.Kind]

	title := item.Title
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if !item.Read {
		titleStyle = titleStyle.Bold(true)
		title = "● " + title
	}

	line := icon + " " + titleStyle.Render(title) + "\n" +
		theme.Hint.Render(item.Message) + "\n" +
		theme.Hint.Render(item.Timestamp.Format("Jan 2 15:04"))

	return components.Card(line, cw)
}
