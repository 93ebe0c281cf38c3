package repository

import (
	"context"
	"fmt"

	"lostfound/internal/logger"
	"lostfound/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, registration_number, password_hash, role, active, terms_accepted, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.RegistrationNumber,
		&u.PasswordHash,
		&u.Role,
		&u.Active,
		&u.TermsAccepted,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	logger.Log.Info("Creating user (repo)",
		zap.String("registration_number", user.RegistrationNumber),
		zap.String("role", string(user.Role)),
	)
	query := `
	INSERT INTO users (first_name, last_name, email, registration_number, password_hash, role, active, terms_accepted)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.RegistrationNumber,
		user.PasswordHash,
		user.Role,
		user.Active,
		user.TermsAccepted,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		err = mapErr(err)
		logger.Log.Error("Create user failed (repo)", zap.Error(err))
		return err
	}
	return nil
}

// IsIdentityTaken reports whether the registration number or the email is
// already used by any account, regardless of role.
func (r *UserRepository) IsIdentityTaken(ctx context.Context, registrationNumber, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE registration_number = $1 OR lower(email) = lower($2))`
	var exists bool
	err := r.db.QueryRow(ctx, query, registrationNumber, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("Identity uniqueness check failed (repo)", zap.Error(err))
		return false, fmt.Errorf("check identity: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) GetByRegistration(ctx context.Context, registrationNumber string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE registration_number = $1`, registrationNumber)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

// List returns users ordered by id. An empty role lists everyone.
func (r *UserRepository) List(ctx context.Context, role models.Role) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ($1 = '' OR role = $1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, string(role))
	if err != nil {
		logger.Log.Error("List users failed (repo)", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) CountMasters(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = 'master' AND active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count masters: %w", err)
	}
	return n, nil
}
