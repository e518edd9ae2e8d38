package repository

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// User defines user persistence operations
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
