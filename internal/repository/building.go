package repository

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Building defines structure persistence operations
type Building interface {
	GetBuildingsByUserID(ctx context.Context, userID string) ([]domain.Building, error)
	GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error)
	CreateBuilding(ctx context.Context, b *domain.Building) error
	UpdateBuilding(ctx context.Context, b *domain.Building) error
}
