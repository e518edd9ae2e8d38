package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type bossRepository struct {
	db *pgxpool.Pool
}

// NewBossRepository creates a new PostgreSQL boss repository
func NewBossRepository(db *pgxpool.Pool) repository.Boss {
	return &bossRepository{db: db}
}

// GetBossForDay retrieves the user's boss for a calendar day
func (r *bossRepository) GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error) {
	return getBossForDay(ctx, r.db, userID, day)
}

// CreateBoss inserts a new daily boss, filling in the generated ID
func (r *bossRepository) CreateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return createBoss(ctx, r.db, boss)
}

// UpdateBoss persists the combat state of a boss row
func (r *bossRepository) UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return updateBoss(ctx, r.db, boss)
}

// DeleteBossesForUser removes all of a user's boss rows, returning the count
func (r *bossRepository) DeleteBossesForUser(ctx context.Context, userID string) (int64, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM boss_enemies WHERE user_id = $1`, userUUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteBoss, err)
	}

	return tag.RowsAffected(), nil
}

func getBossForDay(ctx context.Context, q querier, userID string, day time.Time) (*domain.BossEnemy, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT boss_id, user_id, name, total_hp, current_hp,
			damage_dealt_to_user, is_defeated, day, created_at
		FROM boss_enemies
		WHERE user_id = $1 AND day = $2
	`

	var boss domain.BossEnemy
	err = q.QueryRow(ctx, query, userUUID, midnightUTC(day)).Scan(
		&boss.ID, &boss.UserID, &boss.Name, &boss.TotalHP, &boss.CurrentHP,
		&boss.DamageDealtToUser, &boss.IsDefeated, &boss.Day, &boss.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBossNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBoss, err)
	}

	return &boss, nil
}

func createBoss(ctx context.Context, q querier, boss *domain.BossEnemy) error {
	userUUID, err := parseUserUUID(boss.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO boss_enemies (user_id, name, total_hp, current_hp,
			damage_dealt_to_user, is_defeated, day)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING boss_id, created_at
	`

	err = q.QueryRow(ctx, query,
		userUUID, boss.Name, boss.TotalHP, boss.CurrentHP,
		boss.DamageDealtToUser, boss.IsDefeated, midnightUTC(boss.Day),
	).Scan(&boss.ID, &boss.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertBoss, err)
	}

	return nil
}

func updateBoss(ctx context.Context, q querier, boss *domain.BossEnemy) error {
	query := `
		UPDATE boss_enemies
		SET current_hp = $2, damage_dealt_to_user = $3, is_defeated = $4
		WHERE boss_id = $1
	`

	tag, err := q.Exec(ctx, query,
		boss.ID, boss.CurrentHP, boss.DamageDealtToUser, boss.IsDefeated)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBoss, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBossNotFound
	}

	return nil
}
