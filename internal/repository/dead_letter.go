package repository

import (
	"context"
	"fmt"

	"lostfound/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeadLetterRepository struct {
	db *pgxpool.Pool
}

func NewDeadLetterRepository(db *pgxpool.Pool) *DeadLetterRepository {
	return &DeadLetterRepository{db: db}
}

func (r *DeadLetterRepository) Save(ctx context.Context, d *models.DeadLetter) error {
	_, err := r.db.Exec(ctx, `
	INSERT INTO notification_dead_letters (id, recipient, subject, body, attempts, last_error, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Recipient, d.Subject, d.Body, d.Attempts, d.LastError, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save dead letter: %w", err)
	}
	return nil
}

// List returns the most recent dead letters first.
func (r *DeadLetterRepository) List(ctx context.Context, limit int) ([]models.DeadLetter, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `
	SELECT id, recipient, subject, body, attempts, last_error, created_at
	FROM notification_dead_letters
	ORDER BY id DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list dead letters: %w", err)
	}
	defer rows.Close()

	out := make([]models.DeadLetter, 0)
	for rows.Next() {
		var d models.DeadLetter
		if err := rows.Scan(&d.ID, &d.Recipient, &d.Subject, &d.Body, &d.Attempts, &d.LastError, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
