package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &userRepository{db: db}
}

// CreateUser inserts a new user, filling in the generated ID and timestamp
func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING user_id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.Email).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}

	return nil
}

// GetUserByID retrieves a user by their UUID
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id, username, email, created_at
		FROM users
		WHERE user_id = $1
	`

	var user domain.User
	err = r.db.QueryRow(ctx, query, userUUID).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by their unique username
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, created_at
		FROM users
		WHERE username = $1
	`

	var user domain.User
	err := r.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByName, err)
	}

	return &user, nil
}
