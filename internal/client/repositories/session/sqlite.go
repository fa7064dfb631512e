package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"soukclient/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, TokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", TokenKey, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, TokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", TokenKey, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
