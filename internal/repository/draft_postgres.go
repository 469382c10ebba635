package repository

import (
	"context"
	"errors"
	"time"

	"hireboard/internal/database"

	"github.com/jackc/pgx/v5"
)

type PostgresDraftStore struct {
	db database.DB
}

func NewPostgresDraftStore(db database.DB) *PostgresDraftStore {
	return &PostgresDraftStore{db: db}
}

func (r *PostgresDraftStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM intake_drafts WHERE draft_key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (r *PostgresDraftStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO intake_drafts (draft_key, payload, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (draft_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		key, data, time.Now().UTC(),
	)
	return err
}

func (r *PostgresDraftStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM intake_drafts WHERE draft_key = $1`, key)
	return err
}
