package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustream/edustream/internal/llm"
)

func TestBeginAppendsUserMessageOptimistically(t *testing.T) {
	s := NewSession("Cloud Native Go")

	req, ok := s.Begin("What is a goroutine?")
	require.True(t, ok)
	assert.True(t, s.InFlight())

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "What is a goroutine?", msgs[0].Text)

	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Contains(t, req.System, "Cloud Native Go")
}

func TestBeginRejectsBlankInput(t *testing.T) {
	s := NewSession("UX Design")

	for _, text := range []string{"", "   ", "\t\n"} {
		_, ok := s.Begin(text)
		assert.False(t, ok, "input %q should be rejected", text)
	}
	assert.Empty(t, s.Messages())
	assert.False(t, s.InFlight())
}

func TestBeginRejectsWhileInFlight(t *testing.T) {
	s := NewSession("UX Design")

	_, ok := s.Begin("first question")
	require.True(t, ok)

	_, ok = s.Begin("second question")
	assert.False(t, ok)
	assert.Len(t, s.Messages(), 1, "rejected submission must not append")
}

func TestResolveAppendsReplyAndClearsInFlight(t *testing.T) {
	s := NewSession("ASP.NET")
	_, ok := s.Begin("What is middleware?")
	require.True(t, ok)

	s.Resolve("Middleware is a pipeline component.")

	assert.False(t, s.InFlight())
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Middleware is a pipeline component.", msgs[1].Text)

	// The next submission is accepted again.
	req, ok := s.Begin("And filters?")
	require.True(t, ok)
	assert.Len(t, req.Messages, 3, "request carries the full transcript")
}

func TestFailAppendsFallbackReply(t *testing.T) {
	s := NewSession("ASP.NET")
	_, ok := s.Begin("What is middleware?")
	require.True(t, ok)

	s.Fail()

	assert.False(t, s.InFlight())
	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, FallbackReply, msgs[1].Text)
}

func TestResolveWithoutInFlightIsNoOp(t *testing.T) {
	s := NewSession("ASP.NET")
	s.Resolve("stray reply")
	assert.Empty(t, s.Messages())
}

func TestDisposeDropsStaleResponses(t *testing.T) {
	s := NewSession("ASP.NET")
	_, ok := s.Begin("question")
	require.True(t, ok)

	s.Dispose()
	assert.True(t, s.Disposed())

	s.Resolve("late reply")
	s.Fail()
	assert.Len(t, s.Messages(), 1, "disposed session must not grow")

	_, ok = s.Begin("another question")
	assert.False(t, ok)
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a := NewSession("topic")
	b := NewSession("topic")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEmpty(t, a.ID())
}
