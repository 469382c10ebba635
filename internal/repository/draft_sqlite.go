package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const sqliteDraftSchema = `
CREATE TABLE IF NOT EXISTS intake_drafts (
	draft_key  TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

type SQLiteDraftStore struct {
	db *sql.DB
}

// NewSQLiteDraftStore creates the drafts table when missing.
func NewSQLiteDraftStore(ctx context.Context, db *sql.DB) (*SQLiteDraftStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	if _, err := db.ExecContext(ctx, sqliteDraftSchema); err != nil {
		return nil, err
	}
	return &SQLiteDraftStore{db: db}, nil
}

func (r *SQLiteDraftStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM intake_drafts WHERE draft_key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (r *SQLiteDraftStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO intake_drafts (draft_key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(draft_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *SQLiteDraftStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM intake_drafts WHERE draft_key = ?`, key)
	return err
}
