package repository

import (
	"context"
	"fmt"

	"lostfound/internal/logger"
	"lostfound/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LostReportRepository struct {
	db *pgxpool.Pool
}

func NewLostReportRepository(db *pgxpool.Pool) *LostReportRepository {
	return &LostReportRepository{db: db}
}

func (r *LostReportRepository) Create(ctx context.Context, rep *models.LostReport) error {
	query := `
	INSERT INTO lost_reports (user_id, name, description, category, location, lost_date, color, brand, unique_feature)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		rep.UserID,
		rep.Name,
		rep.Description,
		rep.Category,
		rep.Location,
		rep.LostDate,
		rep.Color,
		rep.Brand,
		rep.UniqueFeature,
	).Scan(&rep.ID, &rep.CreatedAt)
	if err != nil {
		logger.Log.Error("Create lost report failed (repo)", zap.Int64("user_id", rep.UserID), zap.Error(err))
		return fmt.Errorf("create lost report: %w", mapErr(err))
	}
	return nil
}

// List returns every report with the reporter's name, newest first.
func (r *LostReportRepository) List(ctx context.Context) ([]models.LostReport, error) {
	query := `
	SELECT l.id, l.user_id, l.name, l.description, l.category, l.location, l.lost_date,
	       COALESCE(l.color, ''), COALESCE(l.brand, ''), COALESCE(l.unique_feature, ''), l.created_at,
	       u.first_name || ' ' || u.last_name
	FROM lost_reports l
	JOIN users u ON u.id = l.user_id
	ORDER BY l.created_at DESC, l.id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("List lost reports failed (repo)", zap.Error(err))
		return nil, fmt.Errorf("list lost reports: %w", err)
	}
	defer rows.Close()

	out := make([]models.LostReport, 0)
	for rows.Next() {
		var l models.LostReport
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Name, &l.Description, &l.Category, &l.Location, &l.LostDate,
			&l.Color, &l.Brand, &l.UniqueFeature, &l.CreatedAt, &l.ReporterName,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
