package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordRepo stores named durable records. Each record is a single blob
// of structured text overwritten in full on every save; there are no
// partial writes.
type RecordRepo interface {
	// Load returns the record data, or ok=false if the record does not
	// exist. A missing record is not an error.
	Load(ctx context.Context, name string) (data []byte, ok bool, err error)

	// Save overwrites the record in full, creating it if absent.
	Save(ctx context.Context, name string, data []byte) error
}

type recordRepo struct {
	db *sql.DB
}

func (r *recordRepo) Load(ctx context.Context, name string) ([]byte, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE name = ?`, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load record %q: %w", name, err)
	}
	return []byte(data), true, nil
}

func (r *recordRepo) Save(ctx context.Context, name string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save record %q: %w", name, err)
	}
	return nil
}
