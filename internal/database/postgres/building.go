package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type buildingRepository struct {
	db *pgxpool.Pool
}

// NewBuildingRepository creates a new PostgreSQL building repository
func NewBuildingRepository(db *pgxpool.Pool) repository.Building {
	return &buildingRepository{db: db}
}

// GetBuildingsByUserID retrieves all of a user's buildings in purchase order
func (r *buildingRepository) GetBuildingsByUserID(ctx context.Context, userID string) ([]domain.Building, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT building_id, user_id, building_type, level, purchased_at
		FROM user_buildings
		WHERE user_id = $1
		ORDER BY purchased_at
	`

	rows, err := r.db.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuildings, err)
	}
	defer rows.Close()

	var buildings []domain.Building
	for rows.Next() {
		var b domain.Building
		err := rows.Scan(&b.ID, &b.UserID, &b.BuildingType, &b.Level, &b.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuildings, err)
		}
		buildings = append(buildings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuildings, err)
	}

	return buildings, nil
}

// GetBuilding retrieves one of a user's buildings by type
func (r *buildingRepository) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	return getBuilding(ctx, r.db, userID, buildingType)
}

// CreateBuilding inserts a new building at its initial level
func (r *buildingRepository) CreateBuilding(ctx context.Context, b *domain.Building) error {
	return createBuilding(ctx, r.db, b)
}

// UpdateBuilding persists a building's level
func (r *buildingRepository) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	return updateBuilding(ctx, r.db, b)
}

func getBuilding(ctx context.Context, q querier, userID, buildingType string) (*domain.Building, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT building_id, user_id, building_type, level, purchased_at
		FROM user_buildings
		WHERE user_id = $1 AND building_type = $2
	`

	var b domain.Building
	err = q.QueryRow(ctx, query, userUUID, buildingType).
		Scan(&b.ID, &b.UserID, &b.BuildingType, &b.Level, &b.PurchasedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBuilding, err)
	}

	return &b, nil
}

func createBuilding(ctx context.Context, q querier, b *domain.Building) error {
	userUUID, err := parseUserUUID(b.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_buildings (user_id, building_type, level)
		VALUES ($1, $2, $3)
		RETURNING building_id, purchased_at
	`

	err = q.QueryRow(ctx, query, userUUID, b.BuildingType, b.Level).
		Scan(&b.ID, &b.PurchasedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertBuilding, err)
	}

	return nil
}

func updateBuilding(ctx context.Context, q querier, b *domain.Building) error {
	query := `UPDATE user_buildings SET level = $2 WHERE building_id = $1`

	tag, err := q.Exec(ctx, query, b.ID, b.Level)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBuilding, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBuildingNotFound
	}

	return nil
}
