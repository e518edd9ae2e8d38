package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/database/postgres"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	TxManager repository.TxManager
	User      repository.User
	Stats     repository.Stats
	Rule      repository.Rule
	UsageLog  repository.UsageLog
	Boss      repository.Boss
	Quest     repository.Quest
	Building  repository.Building
}

// InitializeRepositories creates all repository implementations.
// Every repository shares the same database pool; the transaction manager
// hands out unit-of-work transactions over that pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager: postgres.NewTxManager(dbPool),
		User:      postgres.NewUserRepository(dbPool),
		Stats:     postgres.NewStatsRepository(dbPool),
		Rule:      postgres.NewRuleRepository(dbPool),
		UsageLog:  postgres.NewUsageLogRepository(dbPool),
		Boss:      postgres.NewBossRepository(dbPool),
		Quest:     postgres.NewQuestRepository(dbPool),
		Building:  postgres.NewBuildingRepository(dbPool),
	}
}
