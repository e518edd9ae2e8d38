package usage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/game"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type Service interface {
	// SyncUsage ingests a batch of usage logs and runs one full sync:
	// combat, rewards, level-ups, and quest progression.
	SyncUsage(ctx context.Context, userID string, logs []domain.UsageLogEntry) (*domain.SyncResult, error)

	// GetTodaysBoss returns the caller's boss for the current UTC day,
	// generating one on first access.
	GetTodaysBoss(ctx context.Context, userID string) (*domain.BossEnemy, error)
}

type service struct {
	txManager repository.TxManager
	userRepo  repository.User
	statsRepo repository.Stats
	bossRepo  repository.Boss
	engine    *game.Engine
	publisher *event.ResilientPublisher
	now       func() time.Time

	// engine's random source is not safe for concurrent use
	mu sync.Mutex
}

func NewService(
	txManager repository.TxManager,
	userRepo repository.User,
	statsRepo repository.Stats,
	bossRepo repository.Boss,
	engine *game.Engine,
	publisher *event.ResilientPublisher,
) Service {
	return &service{
		txManager: txManager,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		bossRepo:  bossRepo,
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
	}
}

// questSnapshot records a quest's mutable fields before the engine runs, so
// only rows the engine actually touched get written back.
type questSnapshot struct {
	status   domain.QuestStatus
	progress int
}

// SyncUsage runs the whole sync inside one transaction holding the user's
// stats row lock, so concurrent syncs for the same user serialize and each
// one sees the previous one's boss damage and XP. Events are published only
// after commit.
func (s *service) SyncUsage(ctx context.Context, userID string, logs []domain.UsageLogEntry) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats, err := tx.GetStatsForUpdate(ctx, userID)
	if errors.Is(err, domain.ErrStatsNotFound) {
		// First sync for a user whose onboarding never created stats.
		if _, uerr := s.userRepo.GetUserByID(ctx, userID); uerr != nil {
			return nil, uerr
		}
		stats = domain.NewDefaultStats(userID)
		if cerr := tx.CreateStats(ctx, stats); cerr != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, cerr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}
	prevLevel := stats.Level

	now := s.now().UTC()
	day := midnightUTC(now)

	boss, err := tx.GetBossForDay(ctx, userID, day)
	if errors.Is(err, domain.ErrBossNotFound) {
		boss = s.generateBoss(userID, stats.Level, day)
		if cerr := tx.CreateBoss(ctx, boss); cerr != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, cerr)
		}
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}

	rules, err := tx.GetRulesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}

	questRows, err := tx.GetUserQuests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}
	quests := make([]*domain.UserQuest, len(questRows))
	before := make([]questSnapshot, len(questRows))
	for i := range questRows {
		quests[i] = &questRows[i]
		before[i] = questSnapshot{status: questRows[i].Status, progress: questRows[i].CurrentProgress}
	}

	result := s.engine.Sync(stats, boss, rules, logs, quests, now)

	if len(logs) > 0 {
		if err := tx.InsertLogs(ctx, userID, logs); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
		}
	}
	if err := tx.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}
	if result.Battle != nil {
		if err := tx.UpdateBoss(ctx, boss); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
		}
	}

	var completed []string
	for i, uq := range quests {
		if uq.Status == before[i].status && uq.CurrentProgress == before[i].progress {
			continue
		}
		if err := tx.UpdateUserQuest(ctx, uq); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
		}
		if uq.Status == domain.QuestStatusCompleted && before[i].status != domain.QuestStatusCompleted && uq.Definition != nil {
			completed = append(completed, uq.Definition.Code)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSync, err)
	}

	log.Info("usage sync completed",
		"user_id", userID,
		"log_count", len(logs),
		"xp_gained", result.XPGained,
		"level_up", result.LevelUp)

	bossDefeated := result.Battle != nil && result.Battle.BossDefeated
	s.publisher.PublishWithRetry(ctx, event.NewSyncCompletedEvent(userID, result.XPGained, len(logs), result.LevelUp, bossDefeated))
	if bossDefeated {
		s.publisher.PublishWithRetry(ctx, event.NewBossDefeatedEvent(userID, result.Battle.BossName, boss.TotalHP, result.Battle.XPReward))
	}
	if result.LevelUp {
		s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(userID, prevLevel, stats.Level))
	}
	for _, code := range completed {
		s.publisher.PublishWithRetry(ctx, event.NewQuestCompletedEvent(userID, code))
	}

	return &result, nil
}

// GetTodaysBoss reads the daily boss outside a transaction, generating it
// lazily on first access. A concurrent first access can race the insert;
// the unique day constraint makes the loser re-read the winner's boss.
func (s *service) GetTodaysBoss(ctx context.Context, userID string) (*domain.BossEnemy, error) {
	day := midnightUTC(s.now().UTC())

	boss, err := s.bossRepo.GetBossForDay(ctx, userID, day)
	if err == nil {
		return boss, nil
	}
	if !errors.Is(err, domain.ErrBossNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBoss, err)
	}

	stats, err := s.statsRepo.GetStatsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			if _, uerr := s.userRepo.GetUserByID(ctx, userID); uerr != nil {
				return nil, uerr
			}
			stats = domain.NewDefaultStats(userID)
		} else {
			return nil, err
		}
	}

	boss = s.generateBoss(userID, stats.Level, day)
	if err := s.bossRepo.CreateBoss(ctx, boss); err != nil {
		if existing, gerr := s.bossRepo.GetBossForDay(ctx, userID, day); gerr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBoss, err)
	}
	return boss, nil
}

func (s *service) generateBoss(userID string, playerLevel int, day time.Time) *domain.BossEnemy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GenerateBoss(userID, playerLevel, day)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
