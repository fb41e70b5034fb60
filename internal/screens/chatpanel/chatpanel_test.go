package chatpanel

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edustream/edustream/internal/chat"
	"github.com/edustream/edustream/internal/llm"
)

func TestSendRoundTrip(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Text: "A goroutine is a lightweight thread."},
	)
	p := New("Cloud Native Go", provider)
	p.input.SetValue("What is a goroutine?")

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a provider command")
	}
	if p.input.Value() != "" {
		t.Error("accepted input should clear the field")
	}
	if !p.session.InFlight() {
		t.Fatal("expected in-flight session")
	}

	_, _ = p.Update(cmd())

	msgs := p.session.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Text != "A goroutine is a lightweight thread." {
		t.Errorf("unexpected reply: %q", msgs[1].Text)
	}
	if p.session.InFlight() {
		t.Error("in-flight should clear after the reply")
	}
}

func TestProviderFailureShowsFallback(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := New("UX Design", provider)
	p.input.SetValue("hello")

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a provider command")
	}
	_, _ = p.Update(cmd())

	msgs := p.session.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Text != chat.FallbackReply {
		t.Errorf("expected fallback reply, got %q", msgs[1].Text)
	}
}

func TestRejectedInputStaysInField(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "reply"})
	p := New("topic", provider)
	p.input.SetValue("first")

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a provider command")
	}

	// A second submission while the first is in flight is rejected and
	// the typed text is preserved.
	p.input.SetValue("second")
	_, rejected := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if rejected != nil {
		t.Fatal("in-flight submission should be rejected")
	}
	if p.input.Value() != "second" {
		t.Errorf("rejected input should stay, got %q", p.input.Value())
	}
}

func TestStaleReplyAfterCloseIsDropped(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "late reply"})
	p := New("topic", provider)
	p.input.SetValue("question")

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a provider command")
	}

	p.Close()
	_, _ = p.Update(cmd())

	msgs := p.session.Messages()
	if len(msgs) != 1 {
		t.Fatalf("disposed session must not receive the reply, got %d messages", len(msgs))
	}
}

func TestReplyForOtherSessionIgnored(t *testing.T) {
	provider := llm.NewMockProvider()
	p := New("topic", provider)
	p.input.SetValue("question")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, _ = p.Update(replyMsg{SessionID: "someone-else", Reply: "nope"})
	if len(p.session.Messages()) != 1 {
		t.Error("reply for another session must be ignored")
	}
	if !p.session.InFlight() {
		t.Error("in-flight must stay set for the real reply")
	}
}
