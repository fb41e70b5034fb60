package llm

import "context"

type contextKey string

const sessionIDKey contextKey = "llm_session_id"

// WithSessionID attaches a chat session identifier to the context for
// event logging.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFrom extracts the chat session identifier from the context.
func SessionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return "unknown"
}
