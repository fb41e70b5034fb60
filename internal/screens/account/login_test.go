package account

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edustream/edustream/internal/api"
	"github.com/edustream/edustream/internal/nav"
)

func newTestLogin() *LoginScreen {
	client := api.NewMockClient()
	client.Latency = time.Millisecond
	return NewLogin(client)
}

func TestSubmitHappyPath(t *testing.T) {
	s := newTestLogin()
	s.email.SetValue("john@example.com")
	s.password.SetValue("secret")
	s.focus = 1

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	if !s.submitting {
		t.Fatal("expected submitting state")
	}

	msg := cmd()
	result, ok := msg.(loginResultMsg)
	if !ok {
		t.Fatalf("expected loginResultMsg, got %T", msg)
	}
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.User.ID != "u1" {
		t.Errorf("expected user u1, got %q", result.User.ID)
	}

	// Feeding the result back yields the logged-in navigation message.
	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	loggedIn, ok := cmd().(nav.LoggedInMsg)
	if !ok {
		t.Fatalf("expected nav.LoggedInMsg, got %T", cmd())
	}
	if loggedIn.User.Name != "John Doe" {
		t.Errorf("expected John Doe, got %q", loggedIn.User.Name)
	}
	if s.submitting {
		t.Error("submitting flag should clear on result")
	}
}

func TestInvalidCredentialsShowError(t *testing.T) {
	s := newTestLogin()
	s.focus = 1 // blank email and password

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a login command")
	}

	_, cmd = s.Update(cmd())
	if cmd != nil {
		t.Fatal("failed login must not navigate")
	}
	if s.errText == "" {
		t.Error("expected an error message")
	}
	if s.submitting {
		t.Error("submitting flag should clear on failure")
	}
}

func TestKeypressIgnoredWhileSubmitting(t *testing.T) {
	s := newTestLogin()
	s.submitting = true

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("input during submission should be ignored")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	s := newTestLogin()
	if s.focus != 0 {
		t.Fatalf("expected initial focus 0, got %d", s.focus)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != 1 {
		t.Errorf("expected focus 1 after tab, got %d", s.focus)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", s.focus)
	}
}

func TestShellScreensReturnToLogin(t *testing.T) {
	r := NewRegister()
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if goMsg, ok := cmd().(nav.GoMsg); !ok || goMsg.View != nav.ViewLogin {
		t.Errorf("register enter should return to login, got %v", cmd())
	}

	f := NewForgot()
	f.email.SetValue("john@example.com")
	f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !f.sent {
		t.Error("expected sent state after submitting an email")
	}
	_, cmd = f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command after sent")
	}
	if goMsg, ok := cmd().(nav.GoMsg); !ok || goMsg.View != nav.ViewLogin {
		t.Errorf("forgot enter should return to login, got %v", cmd())
	}
}
