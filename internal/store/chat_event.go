package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ChatRequestEventData captures one round trip to the chat provider.
type ChatRequestEventData struct {
	Provider     string
	Model        string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ChatRequestEvent is a stored chat request event.
type ChatRequestEvent struct {
	ID        int64
	Timestamp time.Time
	ChatRequestEventData
}

// ChatEventRepo provides append and query access to chat request events.
type ChatEventRepo interface {
	// AppendChatRequest records a chat provider call.
	AppendChatRequest(ctx context.Context, data ChatRequestEventData) error

	// RecentChatRequests returns the most recent events, newest first.
	// limit <= 0 means a default of 50.
	RecentChatRequests(ctx context.Context, limit int) ([]ChatRequestEvent, error)
}

type chatEventRepo struct {
	db *sql.DB
}

func (r *chatEventRepo) AppendChatRequest(ctx context.Context, data ChatRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_request_events
		 (timestamp, provider, model, session_id, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.SessionID,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append chat request event: %w", err)
	}
	return nil
}

func (r *chatEventRepo) RecentChatRequests(ctx context.Context, limit int) ([]ChatRequestEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, session_id, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM chat_request_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat request events: %w", err)
	}
	defer rows.Close()

	var out []ChatRequestEvent
	for rows.Next() {
		var (
			e       ChatRequestEvent
			ts      string
			success int
		)
		if err := rows.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.SessionID,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan chat request event: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		e.Success = success == 1
		out = append(out, e)
	}
	return out, rows.Err()
}
