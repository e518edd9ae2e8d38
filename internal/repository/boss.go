package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Boss defines daily boss persistence operations. At most one boss exists
// per user per calendar day; day is always normalized to midnight UTC.
type Boss interface {
	GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error)
	CreateBoss(ctx context.Context, boss *domain.BossEnemy) error
	UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error
	DeleteBossesForUser(ctx context.Context, userID string) (int64, error)
}
