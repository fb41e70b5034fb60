package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/ui/theme"
)

// Tab is one entry in the bottom tab bar.
type Tab struct {
	ID    string
	Label string
	Badge int
}

// TabBar renders the bottom navigation tabs. ActiveID selects the
// highlighted tab; a non-zero Badge renders an unread counter next to
// the label.
type TabBar struct {
	Tabs     []Tab
	ActiveID string
}

// NewTabBar creates a tab bar with the given tabs.
func NewTabBar(tabs []Tab) TabBar {
	active := ""
	if len(tabs) > 0 {
		active = tabs[0].ID
	}
	return TabBar{Tabs: tabs, ActiveID: active}
}

// View renders the tab bar at the given width.
func (t TabBar) View(width int) string {
	parts := make([]string, 0, len(t.Tabs))
	for _, tab := range t.Tabs {
		label := tab.Label
		if tab.Badge > 0 {
			label += " " + theme.Badge.Render(fmt.Sprintf("%d", tab.Badge))
		}
		if tab.ID == t.ActiveID {
			parts = append(parts, theme.TabActive.Render("● "+label))
		} else {
			parts = append(parts, theme.TabInactive.Render("○ "+label))
		}
	}

	content := strings.Join(parts, "  ")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
