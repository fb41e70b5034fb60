package splash

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edustream/edustream/internal/nav"
)

func sendTicks(s *SplashScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestAutoTransitionAfterDelay(t *testing.T) {
	s := New()

	// 24 ticks (2400ms) — still on splash, ticking continues.
	cmd := sendTicks(s, 24)
	if cmd == nil {
		t.Fatal("expected a follow-up tick command")
	}
	if s.transitioned {
		t.Fatal("must not transition before the delay elapses")
	}

	// The 25th tick (2500ms) fires the transition.
	cmd = sendTicks(s, 1)
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg := cmd()
	goMsg, ok := msg.(nav.GoMsg)
	if !ok {
		t.Fatalf("expected nav.GoMsg, got %T", msg)
	}
	if goMsg.View != nav.ViewOnboarding {
		t.Errorf("expected onboarding, got %v", goMsg.View)
	}
}

func TestKeypressSkipsAhead(t *testing.T) {
	s := New()
	sendTicks(s, 3)

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger the transition")
	}
	if _, ok := cmd().(nav.GoMsg); !ok {
		t.Fatal("expected nav.GoMsg from keypress skip")
	}
}

func TestTransitionFiresOnce(t *testing.T) {
	s := New()

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("first keypress should transition")
	}

	// A stale tick arriving after the skip must not transition again.
	if cmd := sendTicks(s, 30); cmd != nil {
		t.Error("tick after transition should not produce a command")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'a'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
}

func TestTitleEmpty(t *testing.T) {
	if New().Title() != "" {
		t.Error("expected empty title")
	}
}
