package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"lostfound/internal/imaging"
	"lostfound/internal/logger"
	"lostfound/internal/models"
	"lostfound/internal/repository"

	"go.uber.org/zap"
)

type ItemRepo interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Search(ctx context.Context, f models.ItemFilter) ([]models.Item, error)
	ListAll(ctx context.Context) ([]models.Item, error)
	ListReturned(ctx context.Context) ([]models.ReturnedItem, error)
	MarkReturned(ctx context.Context, id int64) (*models.Item, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

// PhotoStorage stores processed item photos and returns their public path.
type PhotoStorage interface {
	Save(itemName string, r io.Reader) (string, error)
	Remove(publicPath string) error
}

// SearchParams are the raw query parameters of an item search.
type SearchParams struct {
	Term     string
	Category string
	Location string
	Date     string
}

type ItemService struct {
	repo   ItemRepo
	photos PhotoStorage
}

func NewItemService(repo ItemRepo, photos PhotoStorage) *ItemService {
	return &ItemService{repo: repo, photos: photos}
}

// Register records a found item. photo may be nil.
func (s *ItemService) Register(ctx context.Context, actor *models.Identity, in models.ItemInput, photo io.Reader) (*models.Item, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	item, err := buildItem(in)
	if err != nil {
		return nil, err
	}

	log := logger.WithCtx(ctx).With(zap.String("item_name", item.Name))

	if photo != nil {
		path, err := s.photos.Save(item.Name, photo)
		if err != nil {
			if errors.Is(err, imaging.ErrUnsupportedFormat) {
				return nil, invalid("photo", "Formato de imagem não suportado. Envie JPEG ou PNG.")
			}
			if errors.Is(err, imaging.ErrTooLarge) {
				return nil, invalid("photo", "A imagem deve ter no máximo 10 MB.")
			}
			log.Error("Photo storage failed", zap.Error(err))
			return nil, err
		}
		item.PhotoPath = &path
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if item.PhotoPath != nil {
			if rmErr := s.photos.Remove(*item.PhotoPath); rmErr != nil {
				log.Warn("Orphan photo not removed", zap.String("photo", *item.PhotoPath), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	log.Info("Found item registered", zap.Int64("item_id", item.ID), zap.Bool("photo", item.PhotoPath != nil))
	return item, nil
}

func buildItem(in models.ItemInput) (*models.Item, error) {
	in.Name = cleanText(in.Name)
	in.Description = cleanText(in.Description)
	if err := required("name", in.Name, "nome"); err != nil {
		return nil, err
	}
	if err := required("description", in.Description, "descrição"); err != nil {
		return nil, err
	}
	location, err := parseLocation(in.Location)
	if err != nil {
		return nil, err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	category, err := parseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	return &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		Location:    location,
		FoundDate:   date,
		Status:      models.ItemUnclaimed,
	}, nil
}

// Search returns unclaimed items matching p. An empty or "all" category or
// location does not filter.
func (s *ItemService) Search(ctx context.Context, p SearchParams) ([]models.Item, error) {
	var f models.ItemFilter
	f.Term = strings.TrimSpace(p.Term)

	if c := strings.ToLower(strings.TrimSpace(p.Category)); c != "" && c != "all" {
		cat := models.Category(c)
		if !cat.Valid() {
			return nil, ErrInvalidCategory
		}
		f.Category = cat
	}
	if l := strings.ToLower(strings.TrimSpace(p.Location)); l != "" && l != "all" {
		loc := models.Location(l)
		if !loc.Valid() {
			return nil, invalid("location", "Local inválido.")
		}
		f.Location = loc
	}
	if d := strings.TrimSpace(p.Date); d != "" {
		date, err := time.Parse(models.DateLayout, d)
		if err != nil {
			return nil, invalid("date", "Data inválida. Use o formato AAAA-MM-DD.")
		}
		f.Date = &date
	}

	return s.repo.Search(ctx, f)
}

func (s *ItemService) ListAll(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListAll(ctx)
}

// Remove hard-deletes an item with its claims. The photo is removed best effort.
func (s *ItemService) Remove(ctx context.Context, itemID int64, actor *models.Identity) error {
	if err := requireMaster(actor); err != nil {
		return err
	}
	photo, err := s.repo.Delete(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log := logger.WithCtx(ctx).With(zap.Int64("item_id", itemID))
	if photo != nil && *photo != "" {
		if err := s.photos.Remove(*photo); err != nil {
			log.Warn("Photo of removed item not deleted", zap.String("photo", *photo), zap.Error(err))
		}
	}
	log.Info("Item removed")
	return nil
}

// MarkReturned records that a claimed item was handed over.
func (s *ItemService) MarkReturned(ctx context.Context, itemID int64, actor *models.Identity) (*models.Item, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	item, err := s.repo.MarkReturned(ctx, itemID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return nil, ErrItemNotReturnable
	case err != nil:
		return nil, err
	}
	logger.WithCtx(ctx).Info("Item marked as returned", zap.Int64("item_id", itemID))
	return item, nil
}

func (s *ItemService) ListReturned(ctx context.Context, actor *models.Identity) ([]models.ReturnedItem, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.repo.ListReturned(ctx)
}
