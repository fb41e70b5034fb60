// Package chatpanel is the AI tutor overlay. It owns one chat session
// per open/close cycle and talks to the configured LLM provider.
package chatpanel

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edustream/edustream/internal/chat"
	"github.com/edustream/edustream/internal/llm"
	"github.com/edustream/edustream/internal/ui/components"
	"github.com/edustream/edustream/internal/ui/layout"
	"github.com/edustream/edustream/internal/ui/theme"
)

type replyMsg struct {
	SessionID string
	Reply     string
	Err       error
}

// ChatPanel is the tutor chat overlay model.
type ChatPanel struct {
	session  *chat.Session
	provider llm.Provider
	input    components.TextInput
}

// New creates a panel with a fresh session bound to the given topic.
func New(topic string, provider llm.Provider) *ChatPanel {
	return &ChatPanel{
		session:  chat.NewSession(topic),
		provider: provider,
		input:    components.NewTextInput("ask the tutor", 60),
	}
}

// Init focuses the input.
func (c *ChatPanel) Init() tea.Cmd {
	return c.input.Focus()
}

// Close disposes the session. A reply still in flight will be dropped.
func (c *ChatPanel) Close() {
	c.session.Dispose()
}

// Update handles panel input and provider replies.
func (c *ChatPanel) Update(msg tea.Msg) (*ChatPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		// A reply for an older session is stale; the session guard
		// drops it, but we also avoid clearing state for it here.
		if msg.SessionID != c.session.ID() {
			return c, nil
		}
		if msg.Err != nil {
			c.session.Fail()
		} else {
			c.session.Resolve(msg.Reply)
		}
		return c, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send submits the typed question. Rejected input stays in the field
// for resubmission.
func (c *ChatPanel) send() tea.Cmd {
	text := c.input.Value()

	req, ok := c.session.Begin(text)
	if !ok {
		return nil
	}
	c.input.SetValue("")

	provider := c.provider
	sessionID := c.session.ID()
	return func() tea.Msg {
		ctx := llm.WithSessionID(context.Background(), sessionID)
		resp, err := provider.Generate(ctx, req)
		if err != nil {
			return replyMsg{SessionID: sessionID, Err: err}
		}
		return replyMsg{SessionID: sessionID, Reply: resp.Text}
	}
}

// KeyHints returns the overlay footer hints.
func (c *ChatPanel) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "send"},
		{Key: "ctrl+a", Description: "close tutor"},
	}
}

// View renders the overlay.
func (c *ChatPanel) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	title := theme.Title.Render("AI Tutor") + "\n" +
		theme.Subtitle.Render(c.session.Topic())
	sections = append(sections, title)
	sections = append(sections, "")

	msgs := c.session.Messages()
	if len(msgs) == 0 {
		sections = append(sections, theme.Hint.Render("Ask anything about this course."))
	}
	for _, m := range msgs {
		sections = append(sections, renderMessage(m, cw))
	}

	if c.session.InFlight() {
		sections = append(sections, theme.Hint.Render("thinking..."))
	}

	sections = append(sections, "")
	sections = append(sections, c.input.View())

	content := strings.Join(sections, "\n")
	card := components.Card(content, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderMessage(m chat.Message, cw int) string {
	w := cw - 10
	if m.Role == chat.RoleUser {
		return lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(w).
			Align(lipgloss.Right).
			Render("you: " + m.Text)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Width(w).
		Render("tutor: " + m.Text)
}
