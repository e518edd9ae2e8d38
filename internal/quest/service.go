package quest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/IdleHero_Go/internal/config"
	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/game"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type Service interface {
	// GetDefinitions returns the seeded quest catalog.
	GetDefinitions(ctx context.Context) ([]domain.QuestDefinition, error)

	// GetUserQuests returns the caller's quest instances with definitions
	// loaded.
	GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error)

	// ClaimQuestReward pays out a COMPLETED quest exactly once.
	ClaimQuestReward(ctx context.Context, userID, userQuestID string) (*domain.ClaimResult, error)

	// SeedDefinitions upserts the configured quest templates into storage.
	// Called at startup; safe to run repeatedly.
	SeedDefinitions(ctx context.Context) error

	// ResetDaily returns all touched DAILY quests to IN_PROGRESS. Run by
	// the nightly reset worker; unclaimed rewards are forfeited.
	ResetDaily(ctx context.Context) (int64, error)
}

type service struct {
	repo      repository.Quest
	txManager repository.TxManager
	engine    *game.Engine
	publisher *event.ResilientPublisher
	questPool []domain.QuestTemplate
	now       func() time.Time
}

func NewService(
	repo repository.Quest,
	txManager repository.TxManager,
	engine *game.Engine,
	publisher *event.ResilientPublisher,
) (Service, error) {
	s := &service{
		repo:      repo,
		txManager: txManager,
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
	}

	if err := s.loadQuestPool(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadPool, err)
	}

	return s, nil
}

// loadQuestPool loads quest templates from config
func (s *service) loadQuestPool() error {
	data, err := os.ReadFile(config.ConfigPathQuestDefinitions)
	if err != nil {
		return err
	}

	var cfg domain.QuestPoolConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	s.questPool = cfg.Quests
	return nil
}

func (s *service) SeedDefinitions(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, tmpl := range s.questPool {
		def := &domain.QuestDefinition{
			Code:           tmpl.Code,
			Title:          tmpl.Title,
			Description:    tmpl.Description,
			QuestType:      tmpl.QuestType,
			TargetProgress: tmpl.TargetProgress,
			RewardXP:       tmpl.RewardXP,
			RewardGold:     tmpl.RewardGold,
		}
		if err := s.repo.UpsertDefinition(ctx, def); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSeed, err)
		}
	}

	log.Info(LogMsgDefinitionsSeeded, "count", len(s.questPool))
	return nil
}

func (s *service) GetDefinitions(ctx context.Context) ([]domain.QuestDefinition, error) {
	return s.repo.GetDefinitions(ctx)
}

func (s *service) ResetDaily(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := s.repo.ResetDailyQuests(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReset, err)
	}

	log.Info(LogMsgDailyQuestsReset, "quests_reset", count)
	s.publisher.PublishWithRetry(ctx, event.NewDailyQuestsResetEvent(count))

	return count, nil
}

func (s *service) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	return s.repo.GetUserQuests(ctx, userID)
}

// ClaimQuestReward applies a completed quest's reward under the stats row
// lock, so double-claims and concurrent syncs serialize. Claiming flips the
// quest to CLAIMED in the same transaction that pays the reward; either both
// happen or neither does.
func (s *service) ClaimQuestReward(ctx context.Context, userID, userQuestID string) (*domain.ClaimResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats, err := tx.GetStatsForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}
	prevLevel := stats.Level

	quests, err := tx.GetUserQuests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}

	var uq *domain.UserQuest
	for i := range quests {
		if quests[i].ID == userQuestID {
			uq = &quests[i]
			break
		}
	}
	if uq == nil {
		return nil, domain.ErrQuestNotFound
	}

	switch uq.Status {
	case domain.QuestStatusClaimed:
		return nil, domain.ErrQuestClaimed
	case domain.QuestStatusCompleted:
		// fall through to payout
	default:
		return nil, domain.ErrQuestNotCompleted
	}

	if uq.Definition == nil {
		return nil, errors.New(ErrMsgMissingDefinition)
	}

	stats.XP += uq.Definition.RewardXP
	leveledUp, _ := s.engine.ApplyLevelUps(stats)
	stats.Gold += uq.Definition.RewardGold

	claimedAt := s.now().UTC()
	uq.Status = domain.QuestStatusClaimed
	uq.ClaimedAt = &claimedAt

	if err := tx.UpdateUserQuest(ctx, uq); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}
	if err := tx.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClaim, err)
	}

	log.Info(LogMsgQuestClaimed,
		"user_id", userID,
		"quest", uq.Definition.Code,
		"reward_xp", uq.Definition.RewardXP,
		"reward_gold", uq.Definition.RewardGold)

	s.publisher.PublishWithRetry(ctx, event.NewQuestClaimedEvent(userID, uq.Definition.Code, uq.Definition.RewardXP, uq.Definition.RewardGold))
	if leveledUp {
		s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(userID, prevLevel, stats.Level))
	}

	return &domain.ClaimResult{
		Quest:      *uq,
		RewardXP:   uq.Definition.RewardXP,
		RewardGold: uq.Definition.RewardGold,
		LevelUp:    leveledUp,
		NewStats:   *stats,
	}, nil
}
