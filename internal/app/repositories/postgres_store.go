package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

// PostgresSessionStore persists session history in the sessions table.
// Read-modify-write operations take a row lock so concurrent writers to
// the same session serialize instead of losing updates.
type PostgresSessionStore struct {
	db *pgxpool.Pool
}

// NewPostgresSessionStore creates a new PostgresSessionStore
func NewPostgresSessionStore(db *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{db: db}
}

// GetHistory implements SessionStore.
func (s *PostgresSessionStore) GetHistory(ctx context.Context, sessionID string) ([]string, error) {
	var history []string
	err := s.db.QueryRow(ctx,
		`SELECT history FROM sessions WHERE id = $1`,
		sessionID).Scan(&history)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}
	return history, nil
}

// ReplaceHistory implements SessionStore.
func (s *PostgresSessionStore) ReplaceHistory(ctx context.Context, sessionID string, courseIDs []string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (id, history)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET history = $2, updated_at = NOW()`,
		sessionID, dedupe(courseIDs))
	return err
}

// AppendHistory implements SessionStore.
func (s *PostgresSessionStore) AppendHistory(ctx context.Context, sessionID string, courseIDs []string) ([]string, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var history []string
	err = tx.QueryRow(ctx,
		`SELECT history FROM sessions WHERE id = $1 FOR UPDATE`,
		sessionID).Scan(&history)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	updated := merge(history, dedupe(courseIDs))
	_, err = tx.Exec(ctx, `
		INSERT INTO sessions (id, history)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET history = $2, updated_at = NOW()`,
		sessionID, updated)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}
