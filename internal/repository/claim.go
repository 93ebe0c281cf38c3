package repository

import (
	"context"
	"errors"
	"fmt"

	"lostfound/internal/logger"
	"lostfound/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ClaimRepository struct {
	db *pgxpool.Pool
}

func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

const claimColumns = `id, item_id, user_id, justification, status, created_at, resolved_at, resolved_by`

func scanClaim(row pgx.Row) (*models.Claim, error) {
	var c models.Claim
	err := row.Scan(
		&c.ID,
		&c.ItemID,
		&c.UserID,
		&c.Justification,
		&c.Status,
		&c.CreatedAt,
		&c.ResolvedAt,
		&c.ResolvedBy,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// CreatePending locks the item into pending_claim and records the claim in one
// transaction. ErrConflict means the item is absent or not unclaimed.
func (r *ClaimRepository) CreatePending(ctx context.Context, itemID, userID int64, justification string) (*models.Claim, *models.Item, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	item, err := scanItem(tx.QueryRow(ctx, `
	UPDATE items SET status = 'pending_claim', updated_at = now()
	WHERE id = $1 AND status = 'unclaimed'
	RETURNING `+itemColumns, itemID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil, ErrConflict
	}
	if err != nil {
		return nil, nil, fmt.Errorf("lock item: %w", err)
	}

	claim, err := scanClaim(tx.QueryRow(ctx, `
	INSERT INTO claims (item_id, user_id, justification, status)
	VALUES ($1, $2, $3, 'pending')
	RETURNING `+claimColumns, itemID, userID, justification))
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, nil, ErrConflict
		}
		return nil, nil, fmt.Errorf("insert claim: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", mapErr(err))
	}

	logger.Log.Debug("Claim created (repo)", zap.Int64("claim_id", claim.ID), zap.Int64("item_id", itemID))
	return claim, item, nil
}

// Resolve moves a pending claim to its terminal status and sets the item
// status in the same transaction. ErrConflict means the claim is already
// resolved.
func (r *ClaimRepository) Resolve(ctx context.Context, claimID int64, status models.ClaimStatus, itemStatus models.ItemStatus, actorID int64) (*models.Claim, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	claim, err := scanClaim(tx.QueryRow(ctx, `
	UPDATE claims SET status = $2, resolved_at = now(), resolved_by = $3
	WHERE id = $1 AND status = 'pending'
	RETURNING `+claimColumns, claimID, status, actorID))
	if errors.Is(err, ErrNotFound) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM claims WHERE id = $1)`, claimID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check claim: %w", err)
		}
		if exists {
			return nil, ErrConflict
		}
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve claim: %w", err)
	}

	tag, err := tx.Exec(ctx, `
	UPDATE items SET status = $2, updated_at = now()
	WHERE id = $1 AND status = 'pending_claim'`, claim.ItemID, itemStatus)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Log.Error("Item of a pending claim is not pending_claim (repo)",
			zap.Int64("claim_id", claimID), zap.Int64("item_id", claim.ItemID))
		return nil, fmt.Errorf("item %d is not pending a claim", claim.ItemID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return claim, nil
}

func (r *ClaimRepository) GetByID(ctx context.Context, id int64) (*models.Claim, error) {
	return scanClaim(r.db.QueryRow(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id))
}

// ListPending returns the review queue in submission order.
func (r *ClaimRepository) ListPending(ctx context.Context) ([]models.PendingClaim, error) {
	query := `
	SELECT c.id, c.item_id, c.user_id, c.justification, c.status, c.created_at, c.resolved_at, c.resolved_by,
	       i.name, i.description, i.category, i.location, i.found_date, i.photo_path,
	       u.first_name || ' ' || u.last_name, u.email, u.registration_number
	FROM claims c
	JOIN items i ON i.id = c.item_id
	JOIN users u ON u.id = c.user_id
	WHERE c.status = 'pending'
	ORDER BY c.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("List pending claims failed (repo)", zap.Error(err))
		return nil, fmt.Errorf("list pending claims: %w", err)
	}
	defer rows.Close()

	out := make([]models.PendingClaim, 0)
	for rows.Next() {
		var p models.PendingClaim
		if err := rows.Scan(
			&p.ID, &p.ItemID, &p.UserID, &p.Justification, &p.Status, &p.CreatedAt, &p.ResolvedAt, &p.ResolvedBy,
			&p.ItemName, &p.ItemDescription, &p.ItemCategory, &p.ItemLocation, &p.ItemFoundDate, &p.ItemPhotoPath,
			&p.ClaimantName, &p.ClaimantEmail, &p.ClaimantRegistration,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
