package services

import (
	"context"

	"lostfound/internal/logger"
	"lostfound/internal/models"

	"go.uber.org/zap"
)

type LostReportRepo interface {
	Create(ctx context.Context, rep *models.LostReport) error
	List(ctx context.Context) ([]models.LostReport, error)
}

type LostReportService struct {
	repo LostReportRepo
}

func NewLostReportService(repo LostReportRepo) *LostReportService {
	return &LostReportService{repo: repo}
}

func (s *LostReportService) Report(ctx context.Context, actor *models.Identity, in models.LostReportInput) (*models.LostReport, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	item, err := buildItem(models.ItemInput{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Date:        in.Date,
	})
	if err != nil {
		return nil, err
	}

	rep := &models.LostReport{
		UserID:        actor.UserID,
		Name:          item.Name,
		Description:   item.Description,
		Category:      item.Category,
		Location:      item.Location,
		LostDate:      item.FoundDate,
		Color:         cleanText(in.Color),
		Brand:         cleanText(in.Brand),
		UniqueFeature: cleanText(in.UniqueFeature),
		ReporterName:  actor.DisplayName,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("Lost item reported", zap.Int64("report_id", rep.ID))
	return rep, nil
}

func (s *LostReportService) List(ctx context.Context, actor *models.Identity) ([]models.LostReport, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
