package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"lostfound/internal/logger"
	"lostfound/internal/models"
	"lostfound/internal/repository"
	"lostfound/internal/utils"
	"lostfound/internal/utils/helpers"

	"go.uber.org/zap"
)

type PasswordResetRepo interface {
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	Redeem(ctx context.Context, tokenHash string, now time.Time, passwordHash string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type UserFinder interface {
	GetByRegistration(ctx context.Context, registrationNumber string) (*models.User, error)
}

// SyncSender delivers a notification before returning.
type SyncSender interface {
	SendNow(ctx context.Context, msg Notification) error
}

type PasswordService struct {
	users    UserFinder
	repo     PasswordResetRepo
	mail     SyncSender
	appURL   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewPasswordService(users UserFinder, repo PasswordResetRepo, mail SyncSender, appURL string, tokenTTL time.Duration) *PasswordService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &PasswordService{
		users:    users,
		repo:     repo,
		mail:     mail,
		appURL:   strings.TrimRight(appURL, "/"),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// RequestReset issues a single-use reset token for the account and emails
// the reset link. Only the token fingerprint is stored.
func (s *PasswordService) RequestReset(ctx context.Context, registrationNumber string) error {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if err := validateRegistrationNumber(registrationNumber); err != nil {
		return err
	}

	log := logger.WithCtx(ctx).With(zap.String("registration_number", registrationNumber))
	log.Info("Password reset requested")

	user, err := s.users.GetByRegistration(ctx, registrationNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Password reset for unknown registration number")
			return ErrUserNotFound
		}
		return err
	}

	token, err := utils.GenerateToken(32)
	if err != nil {
		log.Error("Reset token generation failed", zap.Error(err))
		return err
	}

	expires := s.now().Add(s.tokenTTL)
	if err := s.repo.Create(ctx, user.ID, utils.FingerprintToken(token), expires); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, url.QueryEscape(token))
	err = s.mail.SendNow(ctx, Notification{
		To:      user.Email,
		Subject: "Redefinição de senha - Achados e Perdidos",
		Body:    helpers.BuildPasswordResetHTML(user.DisplayName(), link),
	})
	if err != nil {
		log.Error("Password reset email failed", zap.Int64("user_id", user.ID), zap.Error(err))
		if errors.Is(err, ErrDependency) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDependency, err)
	}

	log.Info("Password reset email sent", zap.Int64("user_id", user.ID), zap.Time("expires_at", expires))
	return nil
}

// ResetPassword redeems token and sets the new password. A token works once.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidOrExpiredToken
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	userID, err := s.repo.Redeem(ctx, utils.FingerprintToken(token), s.now(), hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.WithCtx(ctx).Warn("Invalid or expired reset token")
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	logger.WithCtx(ctx).Info("Password reset", zap.Int64("user_id", userID))
	return nil
}

// PurgeExpired deletes reset tokens past their expiry.
func (s *PasswordService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}
