// Package chat manages the tutor chat session: one conversation bound
// to a single course topic, with at most one provider request in flight.
package chat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/edustream/edustream/internal/llm"
)

// FallbackReply is appended in place of an assistant reply when the
// provider request fails for any reason.
const FallbackReply = "Service temporarily unavailable."

const (
	maxReplyTokens = 1024
	temperature    = 0.7
)

// Role identifies a chat message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role Role
	Text string
}

// Session is a single tutor conversation. The topic is fixed at
// creation; a new session is created each time the chat is opened.
//
// Session is not safe for concurrent use. All mutation is expected to
// happen on the UI update loop; the provider goroutine only sees the
// request snapshot Begin returns.
type Session struct {
	id       string
	topic    string
	messages []Message
	inFlight bool
	disposed bool
}

// NewSession creates a session for the given course topic.
func NewSession(topic string) *Session {
	return &Session{
		id:    uuid.NewString(),
		topic: topic,
	}
}

// ID returns the session identifier, used for request event logging.
func (s *Session) ID() string { return s.id }

// Topic returns the course topic the session is bound to.
func (s *Session) Topic() string { return s.topic }

// Messages returns the transcript, oldest first.
func (s *Session) Messages() []Message { return s.messages }

// InFlight reports whether a provider request is outstanding.
func (s *Session) InFlight() bool { return s.inFlight }

// Disposed reports whether the session has been torn down.
func (s *Session) Disposed() bool { return s.disposed }

// Begin submits a user question. Blank input, an outstanding request,
// or a disposed session reject the submission and leave the transcript
// untouched. On acceptance the user message is appended immediately and
// a provider request covering the full transcript is returned; exactly
// one of Resolve or Fail must follow.
func (s *Session) Begin(text string) (llm.Request, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.inFlight || s.disposed {
		return llm.Request{}, false
	}

	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.inFlight = true

	req := llm.Request{
		System:      systemPrompt(s.topic),
		Messages:    make([]llm.Message, len(s.messages)),
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	}
	for i, m := range s.messages {
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		req.Messages[i] = llm.Message{Role: role, Content: m.Text}
	}
	return req, true
}

// Resolve records the provider's reply for the outstanding request.
// A no-op when the session was disposed or nothing is in flight.
func (s *Session) Resolve(reply string) {
	if s.disposed || !s.inFlight {
		return
	}
	s.inFlight = false
	s.messages = append(s.messages, Message{Role: RoleAssistant, Text: reply})
}

// Fail records the fixed fallback reply for the outstanding request.
// A no-op when the session was disposed or nothing is in flight.
func (s *Session) Fail() {
	s.Resolve(FallbackReply)
}

// Dispose tears the session down. Later Resolve and Fail calls are
// dropped so a stale provider response can never write into a
// conversation the user already closed.
func (s *Session) Dispose() {
	s.disposed = true
	s.inFlight = false
}

func systemPrompt(topic string) string {
	return fmt.Sprintf(
		"You are a helpful and encouraging tutor for a course on %q. "+
			"Answer the student's questions clearly and concisely, staying on topic.",
		topic,
	)
}
