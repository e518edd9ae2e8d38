package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type txManager struct {
	db *pgxpool.Pool
}

// NewTxManager creates a PostgreSQL implementation of the game-state
// transaction opener
func NewTxManager(db *pgxpool.Pool) repository.TxManager {
	return &txManager{db: db}
}

// Begin opens a transaction for one game-state mutation. The caller must
// Commit or Rollback it; Rollback after Commit is a no-op.
func (m *txManager) Begin(ctx context.Context) (repository.Tx, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}

type gameTx struct {
	tx pgx.Tx
}

// GetStatsForUpdate locks and returns the user's stats row. The row lock is
// what serializes concurrent game-state mutations for the same user.
func (t *gameTx) GetStatsForUpdate(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	return getStats(ctx, t.tx, userID, true)
}

func (t *gameTx) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return createStats(ctx, t.tx, stats)
}

func (t *gameTx) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return updateStats(ctx, t.tx, stats)
}

func (t *gameTx) GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error) {
	return getBossForDay(ctx, t.tx, userID, day)
}

func (t *gameTx) CreateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return createBoss(ctx, t.tx, boss)
}

func (t *gameTx) UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return updateBoss(ctx, t.tx, boss)
}

func (t *gameTx) GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	return getRules(ctx, t.tx, userID)
}

func (t *gameTx) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	return getUserQuests(ctx, t.tx, userID)
}

func (t *gameTx) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	return updateUserQuest(ctx, t.tx, uq)
}

func (t *gameTx) InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error {
	return insertLogs(ctx, t.tx, userID, logs)
}

func (t *gameTx) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	return getBuilding(ctx, t.tx, userID, buildingType)
}

func (t *gameTx) CreateBuilding(ctx context.Context, b *domain.Building) error {
	return createBuilding(ctx, t.tx, b)
}

func (t *gameTx) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	return updateBuilding(ctx, t.tx, b)
}

func (t *gameTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *gameTx) Rollback(ctx context.Context) error {
	SafeRollback(ctx, t.tx)
	return nil
}
