package services

import (
	"context"

	"lostfound/internal/models"
)

const (
	defaultFailedLimit = 100
	maxFailedLimit     = 500
)

type StatsRepo interface {
	Collect(ctx context.Context) (*models.SystemStats, error)
}

type DeadLetterLister interface {
	List(ctx context.Context, limit int) ([]models.DeadLetter, error)
}

// AdminService serves the master dashboard.
type AdminService struct {
	stats StatsRepo
	dead  DeadLetterLister
}

func NewAdminService(stats StatsRepo, dead DeadLetterLister) *AdminService {
	return &AdminService{stats: stats, dead: dead}
}

func (s *AdminService) Stats(ctx context.Context, actor *models.Identity) (*models.SystemStats, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.stats.Collect(ctx)
}

// FailedNotifications lists the latest dead-lettered notifications.
func (s *AdminService) FailedNotifications(ctx context.Context, actor *models.Identity, limit int) ([]models.DeadLetter, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultFailedLimit
	case limit > maxFailedLimit:
		limit = maxFailedLimit
	}
	return s.dead.List(ctx, limit)
}
