package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"lostfound/internal/logger"
	"lostfound/internal/metrics"
	"lostfound/internal/models"
	"lostfound/internal/repository"
	"lostfound/internal/utils/helpers"

	"go.uber.org/zap"
)

// DefaultJustification is stored when a claimant gives no justification.
const DefaultJustification = "Nenhuma descrição fornecida"

type ClaimRepo interface {
	CreatePending(ctx context.Context, itemID, userID int64, justification string) (*models.Claim, *models.Item, error)
	Resolve(ctx context.Context, claimID int64, status models.ClaimStatus, itemStatus models.ItemStatus, actorID int64) (*models.Claim, error)
	ListPending(ctx context.Context) ([]models.PendingClaim, error)
}

type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.Item, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// NotificationQueue accepts notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(ctx context.Context, msg Notification) error
}

type ClaimService struct {
	claims ClaimRepo
	items  ItemReader
	users  UserReader
	notify NotificationQueue
}

func NewClaimService(claims ClaimRepo, items ItemReader, users UserReader, notify NotificationQueue) *ClaimService {
	return &ClaimService{claims: claims, items: items, users: users, notify: notify}
}

// SubmitClaim claims an unclaimed item for the session owner. Concurrent
// submissions for one item are serialized by the store: exactly one wins.
func (s *ClaimService) SubmitClaim(ctx context.Context, itemID int64, actor *models.Identity, justification string) (*models.Claim, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	justification = cleanText(justification)
	if justification == "" {
		justification = DefaultJustification
	}

	log := logger.WithCtx(ctx).With(zap.Int64("item_id", itemID))

	claim, item, err := s.claims.CreatePending(ctx, itemID, actor.UserID, justification)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) || errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDuplicate) {
			metrics.ClaimsSubmitted.WithLabelValues("not_eligible").Inc()
			log.Info("Claim rejected, item not eligible")
			return nil, ErrItemNotEligible
		}
		log.Error("Claim submission failed", zap.Error(err))
		return nil, err
	}

	metrics.ClaimsSubmitted.WithLabelValues("accepted").Inc()
	log.Info("Claim submitted", zap.Int64("claim_id", claim.ID))

	s.enqueue(ctx, Notification{
		To:      actor.Email,
		Subject: "Reivindicação recebida - Achados e Perdidos",
		Body:    helpers.BuildClaimReceivedHTML(actor.DisplayName, item.Name),
	})
	return claim, nil
}

// ResolveClaim approves or rejects a pending claim. A claim is resolved at
// most once, so its outcome is notified at most once.
func (s *ClaimService) ResolveClaim(ctx context.Context, claimID int64, action string, actor *models.Identity) (*models.Claim, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	a := models.ClaimAction(strings.ToLower(strings.TrimSpace(action)))
	if !a.Valid() {
		return nil, ErrInvalidAction
	}

	status, itemStatus := a.Outcome()
	log := logger.WithCtx(ctx).With(zap.Int64("claim_id", claimID), zap.String("action", string(a)))

	claim, err := s.claims.Resolve(ctx, claimID, status, itemStatus, actor.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		log.Info("Claim already resolved")
		return nil, ErrClaimAlreadyResolved
	case err != nil:
		log.Error("Claim resolution failed", zap.Error(err))
		return nil, err
	}

	metrics.ClaimsResolved.WithLabelValues(string(status)).Inc()
	log.Info("Claim resolved", zap.String("status", string(status)))

	claimant, err := s.users.GetByID(ctx, claim.UserID)
	if err != nil {
		log.Warn("Claimant not loaded, outcome not notified", zap.Error(err))
		return claim, nil
	}
	item, err := s.items.GetByID(ctx, claim.ItemID)
	if err != nil {
		log.Warn("Item not loaded, outcome not notified", zap.Error(err))
		return claim, nil
	}

	msg := Notification{To: claimant.Email}
	if status == models.ClaimApproved {
		msg.Subject = "Reivindicação aprovada - Achados e Perdidos"
		msg.Body = helpers.BuildClaimApprovedHTML(claimant.DisplayName(), item.Name)
	} else {
		msg.Subject = "Reivindicação recusada - Achados e Perdidos"
		msg.Body = helpers.BuildClaimRejectedHTML(claimant.DisplayName(), item.Name)
	}
	s.enqueue(ctx, msg)

	return claim, nil
}

func (s *ClaimService) ListPendingClaims(ctx context.Context, actor *models.Identity) ([]models.PendingClaim, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.claims.ListPending(ctx)
}

// enqueue ignores request cancellation. A failure is logged and never
// reported to the caller.
func (s *ClaimService) enqueue(ctx context.Context, msg Notification) {
	qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.notify.Enqueue(qctx, msg); err != nil {
		logger.WithCtx(ctx).Warn("Notification not queued", zap.String("to", msg.To), zap.Error(err))
	}
}
