package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"lostfound/internal/logger"
	"lostfound/internal/metrics"
	"lostfound/internal/models"
	"lostfound/internal/repository"
	"lostfound/internal/utils"

	"go.uber.org/zap"
)

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	IsIdentityTaken(ctx context.Context, registrationNumber, email string) (bool, error)
	GetByRegistration(ctx context.Context, registrationNumber string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role models.Role) ([]models.User, error)
	CountMasters(ctx context.Context) (int, error)
}

// AuthService is the credential store: it registers accounts and verifies
// login credentials.
type AuthService struct {
	repo    UserRepo
	emailRe *regexp.Regexp
}

func NewAuthService(repo UserRepo, emailDomain string) *AuthService {
	return &AuthService{repo: repo, emailRe: emailPattern(emailDomain)}
}

// LandingPage is where a freshly logged in user is sent.
func LandingPage(role models.Role) string {
	if role.IsMaster() {
		return "/area_restrita.html"
	}
	return "/index.html"
}

func (s *AuthService) validateRegistration(in *models.RegistrationInput, role models.Role) error {
	if err := validateName("firstName", in.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", in.LastName); err != nil {
		return err
	}
	if !s.emailRe.MatchString(in.Email) {
		return invalid("email", "E-mail institucional inválido.")
	}
	if err := validateRegistrationNumber(in.RegistrationNumber); err != nil {
		return err
	}
	if err := validatePassword("password", in.Password); err != nil {
		return err
	}
	if in.Password != in.ConfirmPassword {
		return invalid("confirmPassword", "As senhas não coincidem.")
	}
	if role == models.RoleRegular && (in.AcceptTerms == nil || !*in.AcceptTerms) {
		return invalid("acceptTerms", "É necessário aceitar os termos de uso.")
	}
	return nil
}

// RegisterUser creates an account with the given role. The registration
// number and the email must be unused across every role.
func (s *AuthService) RegisterUser(ctx context.Context, in models.RegistrationInput, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("register: unknown role %q", role)
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.RegistrationNumber = strings.TrimSpace(in.RegistrationNumber)

	log := logger.WithCtx(ctx).With(
		zap.String("registration_number", in.RegistrationNumber),
		zap.String("role", string(role)),
	)
	log.Info("Registering user (service)")

	if err := s.validateRegistration(&in, role); err != nil {
		log.Warn("Registration rejected", zap.Error(err))
		return nil, err
	}

	taken, err := s.repo.IsIdentityTaken(ctx, in.RegistrationNumber, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		log.Warn("Registration number or email already in use")
		return nil, ErrDuplicateIdentity
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Error("Password hashing failed", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		RegistrationNumber: in.RegistrationNumber,
		PasswordHash:       hash,
		Role:               role,
		Active:             true,
		TermsAccepted:      in.AcceptTerms != nil && *in.AcceptTerms,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	log.Info("User registered (service)", zap.Int64("user_id", user.ID))
	return user, nil
}

// RegisterMaster creates a master account. Only a master may do so, except
// while no master exists yet.
func (s *AuthService) RegisterMaster(ctx context.Context, actor *models.Identity, in models.RegistrationInput) (*models.User, error) {
	if actor == nil || !actor.Role.IsMaster() {
		n, err := s.repo.CountMasters(ctx)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			if actor == nil {
				return nil, ErrUnauthenticated
			}
			return nil, ErrForbidden
		}
		logger.WithCtx(ctx).Warn("Bootstrapping the first master account")
	}
	return s.RegisterUser(ctx, in, models.RoleMaster)
}

// Authenticate verifies a registration number and password.
func (s *AuthService) Authenticate(ctx context.Context, registrationNumber, password string) (*models.User, error) {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if err := validateRegistrationNumber(registrationNumber); err != nil {
		return nil, err
	}
	if err := validatePassword("password", password); err != nil {
		return nil, err
	}

	log := logger.WithCtx(ctx).With(zap.String("registration_number", registrationNumber))

	user, err := s.repo.GetByRegistration(ctx, registrationNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Login for unknown registration number")
			metrics.Logins.WithLabelValues("unknown_user").Inc()
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.Active {
		log.Warn("Login for inactive account")
		metrics.Logins.WithLabelValues("unknown_user").Inc()
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Wrong password")
		metrics.Logins.WithLabelValues("bad_password").Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	log.Info("User logged in", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// ListUsers lists accounts for a master. An empty role lists everyone.
func (s *AuthService) ListUsers(ctx context.Context, actor *models.Identity, role string) ([]models.User, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	r := models.Role(strings.ToLower(strings.TrimSpace(role)))
	if r != "" && !r.Valid() {
		return nil, invalid("role", "Tipo de usuário inválido.")
	}
	return s.repo.List(ctx, r)
}

// IsMasterEmail reports whether email belongs to an active master.
func (s *AuthService) IsMasterEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, invalid("email", "O campo e-mail é obrigatório.")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Role.IsMaster() && u.Active, nil
}

func (s *AuthService) CountMasters(ctx context.Context) (int, error) {
	return s.repo.CountMasters(ctx)
}

func requireMaster(actor *models.Identity) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.Role.IsMaster() {
		return ErrForbidden
	}
	return nil
}
