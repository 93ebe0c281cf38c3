package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lostfound/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository keeps sessions in Postgres so several server instances
// can share them.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Save(ctx context.Context, s *models.Session) error {
	identity, err := json.Marshal(s.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO sessions (id, identity, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		s.ID, identity, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", mapErr(err))
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context, id string) (*models.Session, error) {
	var (
		s        models.Session
		identity []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, identity, created_at, expires_at FROM sessions WHERE id = $1`, id,
	).Scan(&s.ID, &identity, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := json.Unmarshal(identity, &s.Identity); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
