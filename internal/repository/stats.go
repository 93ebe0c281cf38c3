package repository

import (
	"context"
	"fmt"

	"lostfound/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Collect(ctx context.Context) (*models.SystemStats, error) {
	var s models.SystemStats
	err := r.db.QueryRow(ctx, `
	SELECT
	    (SELECT count(*) FROM users),
	    (SELECT count(*) FROM users WHERE role = 'master'),
	    (SELECT count(*) FROM users WHERE role = 'regular'),
	    (SELECT count(*) FROM items WHERE status = 'unclaimed'),
	    (SELECT count(*) FROM items WHERE status = 'pending_claim'),
	    (SELECT count(*) FROM items WHERE status = 'claimed'),
	    (SELECT count(*) FROM items WHERE status = 'returned'),
	    (SELECT count(*) FROM claims WHERE status = 'pending'),
	    (SELECT count(*) FROM lost_reports),
	    (SELECT count(*) FROM notification_dead_letters)`,
	).Scan(
		&s.TotalUsers,
		&s.Masters,
		&s.RegularUsers,
		&s.Unclaimed,
		&s.PendingClaim,
		&s.Claimed,
		&s.Returned,
		&s.PendingClaims,
		&s.LostReports,
		&s.DeadLetters,
	)
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}
	return &s, nil
}
