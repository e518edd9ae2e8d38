package kingdom

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/game"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

// Error message constants
const (
	ErrMsgFailedToGetKingdom = "failed to get kingdom"
	ErrMsgFailedToConstruct  = "failed to construct building"
	ErrMsgFailedToUpgrade    = "failed to upgrade building"
)

type Service interface {
	// GetKingdom returns the resource ledger plus all constructed
	// buildings.
	GetKingdom(ctx context.Context, userID string) (*domain.Kingdom, error)

	// Construct builds a new structure at base cost.
	Construct(ctx context.Context, userID, buildingType string) (*domain.Building, error)

	// Upgrade raises an existing structure one level at escalating cost.
	Upgrade(ctx context.Context, userID, buildingType string) (*domain.Building, error)
}

type service struct {
	txManager    repository.TxManager
	statsRepo    repository.Stats
	buildingRepo repository.Building
	engine       *game.Engine
	publisher    *event.ResilientPublisher
}

func NewService(
	txManager repository.TxManager,
	statsRepo repository.Stats,
	buildingRepo repository.Building,
	engine *game.Engine,
	publisher *event.ResilientPublisher,
) Service {
	return &service{
		txManager:    txManager,
		statsRepo:    statsRepo,
		buildingRepo: buildingRepo,
		engine:       engine,
		publisher:    publisher,
	}
}

func (s *service) GetKingdom(ctx context.Context, userID string) (*domain.Kingdom, error) {
	stats, err := s.statsRepo.GetStatsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetKingdom, err)
	}

	buildings, err := s.buildingRepo.GetBuildingsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetKingdom, err)
	}

	return &domain.Kingdom{
		Bronze:    stats.Bronze,
		Gold:      stats.Gold,
		Diamond:   stats.Diamond,
		Buildings: buildings,
	}, nil
}

// Construct charges the base construction cost and creates the structure at
// level 1. The resource deduction and the row creation commit together
// under the stats row lock; a duplicate structure aborts before any
// resource moves.
func (s *service) Construct(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats, err := tx.GetStatsForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}

	if _, err := tx.GetBuilding(ctx, userID, buildingType); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBuildingExists, buildingType)
	} else if !errors.Is(err, domain.ErrBuildingNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}

	cost, err := s.engine.ApplyBuildingTransaction(stats, buildingType, 0)
	if err != nil {
		return nil, err
	}

	b := &domain.Building{
		UserID:       userID,
		BuildingType: buildingType,
		Level:        1,
	}
	if err := tx.CreateBuilding(ctx, b); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}
	if err := tx.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConstruct, err)
	}

	log.Info("building constructed",
		"user_id", userID,
		"building", buildingType,
		"gold_spent", cost.Gold)
	s.publisher.PublishWithRetry(ctx, event.NewBuildingConstructedEvent(userID, buildingType, b.Level, cost.Gold))

	return b, nil
}

// Upgrade charges the escalating upgrade cost and bumps the structure one
// level, atomically with the resource deduction.
func (s *service) Upgrade(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats, err := tx.GetStatsForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}

	b, err := tx.GetBuilding(ctx, userID, buildingType)
	if err != nil {
		if errors.Is(err, domain.ErrBuildingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}

	cost, err := s.engine.ApplyBuildingTransaction(stats, buildingType, b.Level)
	if err != nil {
		return nil, err
	}

	b.Level++
	if err := tx.UpdateBuilding(ctx, b); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}
	if err := tx.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpgrade, err)
	}

	log.Info("building upgraded",
		"user_id", userID,
		"building", buildingType,
		"level", b.Level,
		"gold_spent", cost.Gold)
	s.publisher.PublishWithRetry(ctx, event.NewBuildingUpgradedEvent(userID, buildingType, b.Level, cost.Gold))

	return b, nil
}
