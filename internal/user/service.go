package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type Service interface {
	// Register creates a user with default stats and one in-progress
	// instance of every seeded quest.
	Register(ctx context.Context, username, email string) (*domain.User, error)

	// GetProfile returns the user with stats, rules, quests, and
	// buildings loaded.
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type service struct {
	userRepo     repository.User
	statsRepo    repository.Stats
	ruleRepo     repository.Rule
	questRepo    repository.Quest
	buildingRepo repository.Building
	publisher    *event.ResilientPublisher
}

func NewService(
	userRepo repository.User,
	statsRepo repository.Stats,
	ruleRepo repository.Rule,
	questRepo repository.Quest,
	buildingRepo repository.Building,
	publisher *event.ResilientPublisher,
) Service {
	return &service{
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		ruleRepo:     ruleRepo,
		questRepo:    questRepo,
		buildingRepo: buildingRepo,
		publisher:    publisher,
	}
}

func (s *service) Register(ctx context.Context, username, email string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "username", username)

	u := &domain.User{Username: username, Email: email}
	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRegister, err)
	}

	stats := domain.NewDefaultStats(u.ID)
	if err := s.statsRepo.CreateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRegister, err)
	}

	defs, err := s.questRepo.GetDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRegister, err)
	}
	for _, def := range defs {
		uq := &domain.UserQuest{
			UserID:  u.ID,
			QuestID: def.ID,
			Status:  domain.QuestStatusInProgress,
		}
		if err := s.questRepo.CreateUserQuest(ctx, uq); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRegister, err)
		}
	}

	log.Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username, "quests", len(defs))
	s.publisher.PublishWithRetry(ctx, event.NewUserRegisteredEvent(u.ID, u.Username))

	return u, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetStatsByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrStatsNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	rules, err := s.ruleRepo.GetRulesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	quests, err := s.questRepo.GetUserQuests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	buildings, err := s.buildingRepo.GetBuildingsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	return &domain.UserProfile{
		User:      *u,
		Stats:     stats,
		Rules:     rules,
		Quests:    quests,
		Buildings: buildings,
	}, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.GetUserByUsername(ctx, username)
}
