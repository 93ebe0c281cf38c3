package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lostfound/internal/logger"
	"lostfound/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, description, category, location, found_date, photo_path, status, created_at, updated_at, returned_at`

func scanItem(row pgx.Row, extra ...any) (*models.Item, error) {
	var it models.Item
	dest := []any{
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Category,
		&it.Location,
		&it.FoundDate,
		&it.PhotoPath,
		&it.Status,
		&it.CreatedAt,
		&it.UpdatedAt,
		&it.ReturnedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, mapErr(err)
	}
	return &it, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
	INSERT INTO items (name, description, category, location, found_date, photo_path, status)
	VALUES ($1, $2, $3, $4, $5, $6, 'unclaimed')
	RETURNING ` + itemColumns
	created, err := scanItem(r.db.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Category,
		item.Location,
		item.FoundDate,
		item.PhotoPath,
	))
	if err != nil {
		logger.Log.Error("Create item failed (repo)", zap.Error(err))
		return fmt.Errorf("create item: %w", err)
	}
	*item = *created
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	return scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns unclaimed items matching every non-zero field of f, newest first.
func (r *ItemRepository) Search(ctx context.Context, f models.ItemFilter) ([]models.Item, error) {
	query := `
	SELECT ` + itemColumns + `
	FROM items
	WHERE status = 'unclaimed'
	  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR category = $2)
	  AND ($3 = '' OR location = $3)
	  AND ($4::date IS NULL OR found_date = $4::date)
	ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query,
		likeEscaper.Replace(f.Term),
		string(f.Category),
		string(f.Location),
		f.Date,
	)
}

// ListAll returns every item in any status, newest first.
func (r *ItemRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at DESC, id DESC`)
}

func (r *ItemRepository) list(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("List items failed (repo)", zap.Error(err))
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// ListReturned returns returned items with the name of the approved claimant.
func (r *ItemRepository) ListReturned(ctx context.Context) ([]models.ReturnedItem, error) {
	query := `
	SELECT i.id, i.name, i.description, i.category, i.location, i.found_date, i.photo_path,
	       i.status, i.created_at, i.updated_at, i.returned_at,
	       COALESCE(u.first_name || ' ' || u.last_name, '')
	FROM items i
	LEFT JOIN LATERAL (
	    SELECT c.user_id FROM claims c
	    WHERE c.item_id = i.id AND c.status = 'approved'
	    ORDER BY c.id DESC
	    LIMIT 1
	) c ON TRUE
	LEFT JOIN users u ON u.id = c.user_id
	WHERE i.status = 'returned'
	ORDER BY i.returned_at DESC NULLS LAST, i.id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("List returned items failed (repo)", zap.Error(err))
		return nil, fmt.Errorf("list returned items: %w", err)
	}
	defer rows.Close()

	out := make([]models.ReturnedItem, 0)
	for rows.Next() {
		var claimedBy string
		it, err := scanItem(rows, &claimedBy)
		if err != nil {
			return nil, err
		}
		out = append(out, models.ReturnedItem{Item: *it, ClaimedBy: claimedBy})
	}
	return out, rows.Err()
}

// MarkReturned moves a claimed item to returned. ErrConflict means the item
// exists but is not claimed.
func (r *ItemRepository) MarkReturned(ctx context.Context, id int64) (*models.Item, error) {
	query := `
	UPDATE items SET status = 'returned', returned_at = now(), updated_at = now()
	WHERE id = $1 AND status = 'claimed'
	RETURNING ` + itemColumns
	it, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Log.Error("Mark returned failed (repo)", zap.Int64("item_id", id), zap.Error(err))
		return nil, fmt.Errorf("mark returned: %w", err)
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrConflict
}

// Delete removes the item and, by cascade, its claims. It returns the photo
// path the item referenced, if any.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var photo *string
	err := r.db.QueryRow(ctx, `DELETE FROM items WHERE id = $1 RETURNING photo_path`, id).Scan(&photo)
	if err != nil {
		err = mapErr(err)
		if !errors.Is(err, ErrNotFound) {
			logger.Log.Error("Delete item failed (repo)", zap.Int64("item_id", id), zap.Error(err))
		}
		return nil, err
	}
	return photo, nil
}
