package repository

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Stats defines character stats persistence operations
type Stats interface {
	CreateStats(ctx context.Context, stats *domain.CharacterStats) error
	GetStatsByUserID(ctx context.Context, userID string) (*domain.CharacterStats, error)
	UpdateStats(ctx context.Context, stats *domain.CharacterStats) error
}
