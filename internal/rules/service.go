package rules

import (
	"context"
	"fmt"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

// Error message constants
const (
	ErrMsgFailedToCreateRule = "failed to create rule"
	ErrMsgFailedToListRules  = "failed to list rules"
	ErrMsgFailedToDeleteRule = "failed to delete rule"
)

type Service interface {
	CreateRule(ctx context.Context, rule *domain.DetoxRule) (*domain.DetoxRule, error)
	ListRules(ctx context.Context, userID string) ([]domain.DetoxRule, error)
	DeleteRule(ctx context.Context, userID, ruleID string) error
}

type service struct {
	repo     repository.Rule
	userRepo repository.User
}

func NewService(repo repository.Rule, userRepo repository.User) Service {
	return &service{repo: repo, userRepo: userRepo}
}

// CreateRule stores a detox rule for a user. An empty ActiveDays defaults to
// every day of the week; a nil DailyLimitMinutes means no limit, only the
// blocked flag matters for combat.
func (s *service) CreateRule(ctx context.Context, rule *domain.DetoxRule) (*domain.DetoxRule, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepo.GetUserByID(ctx, rule.UserID); err != nil {
		return nil, err
	}

	if rule.ActiveDays == "" {
		rule.ActiveDays = domain.DefaultActiveDays
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateRule, err)
	}

	log.Info("rule created",
		"user_id", rule.UserID,
		"app_package", rule.AppPackageName,
		"blocked", rule.IsBlocked)
	return rule, nil
}

func (s *service) ListRules(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.repo.GetRulesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRules, err)
	}
	return list, nil
}

func (s *service) DeleteRule(ctx context.Context, userID, ruleID string) error {
	if err := s.repo.DeleteRule(ctx, userID, ruleID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRule, err)
	}
	logger.FromContext(ctx).Info("rule deleted", "user_id", userID, "rule_id", ruleID)
	return nil
}
