package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Tx is one serialized game-state transaction for a single user. The stats
// row is locked for the duration, which is what serializes concurrent syncs,
// claims, and construction for the same user; the engine itself performs no
// locking.
type Tx interface {
	GetStatsForUpdate(ctx context.Context, userID string) (*domain.CharacterStats, error)
	CreateStats(ctx context.Context, stats *domain.CharacterStats) error
	UpdateStats(ctx context.Context, stats *domain.CharacterStats) error

	GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error)
	CreateBoss(ctx context.Context, boss *domain.BossEnemy) error
	UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error

	GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error)
	GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error)
	UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error

	InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error

	GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error)
	CreateBuilding(ctx context.Context, b *domain.Building) error
	UpdateBuilding(ctx context.Context, b *domain.Building) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager opens game-state transactions
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}
