package repository

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Rule defines detox rule persistence operations
type Rule interface {
	CreateRule(ctx context.Context, rule *domain.DetoxRule) error
	GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error)
	DeleteRule(ctx context.Context, userID, ruleID string) error
}
