package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

const statsColumns = `stats_id, user_id, level, xp, health, max_health,
		attack_power, defense, gold, diamond, bronze, skill_points,
		class_id, last_sync_at, created_at, updated_at`

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL character stats repository
func NewStatsRepository(db *pgxpool.Pool) repository.Stats {
	return &statsRepository{db: db}
}

// CreateStats inserts the stats row for a user, filling in generated fields
func (r *statsRepository) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return createStats(ctx, r.db, stats)
}

// GetStatsByUserID retrieves the stats row for a user
func (r *statsRepository) GetStatsByUserID(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	return getStats(ctx, r.db, userID, false)
}

// UpdateStats persists the mutable fields of a stats row
func (r *statsRepository) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return updateStats(ctx, r.db, stats)
}

func createStats(ctx context.Context, q querier, stats *domain.CharacterStats) error {
	userUUID, err := parseUserUUID(stats.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO character_stats (user_id, level, xp, health, max_health,
			attack_power, defense, gold, diamond, bronze, skill_points, class_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING stats_id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		userUUID, stats.Level, stats.XP, stats.Health, stats.MaxHealth,
		stats.AttackPower, stats.Defense, stats.Gold, stats.Diamond,
		stats.Bronze, stats.SkillPoints, stats.ClassID,
	).Scan(&stats.ID, &stats.CreatedAt, &stats.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertStats, err)
	}

	return nil
}

func getStats(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.CharacterStats, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + statsColumns + ` FROM character_stats WHERE user_id = $1`
	errMsg := ErrMsgFailedToGetStats
	if forUpdate {
		query += ` FOR UPDATE`
		errMsg = ErrMsgFailedToLockStats
	}

	stats, err := scanStats(q.QueryRow(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatsNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	return stats, nil
}

func updateStats(ctx context.Context, q querier, stats *domain.CharacterStats) error {
	query := `
		UPDATE character_stats
		SET level = $2, xp = $3, health = $4, max_health = $5,
			attack_power = $6, defense = $7, gold = $8, diamond = $9,
			bronze = $10, skill_points = $11, class_id = $12,
			last_sync_at = $13, updated_at = NOW()
		WHERE stats_id = $1
	`

	tag, err := q.Exec(ctx, query,
		stats.ID, stats.Level, stats.XP, stats.Health, stats.MaxHealth,
		stats.AttackPower, stats.Defense, stats.Gold, stats.Diamond,
		stats.Bronze, stats.SkillPoints, stats.ClassID,
		toTimestamptz(stats.LastSyncAt),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStats, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStatsNotFound
	}

	return nil
}

func scanStats(row pgx.Row) (*domain.CharacterStats, error) {
	var stats domain.CharacterStats
	var lastSync pgtype.Timestamptz

	err := row.Scan(
		&stats.ID, &stats.UserID, &stats.Level, &stats.XP,
		&stats.Health, &stats.MaxHealth, &stats.AttackPower, &stats.Defense,
		&stats.Gold, &stats.Diamond, &stats.Bronze, &stats.SkillPoints,
		&stats.ClassID, &lastSync, &stats.CreatedAt, &stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	stats.LastSyncAt = timeOrZero(lastSync)
	return &stats, nil
}
