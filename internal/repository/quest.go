package repository

import (
	"context"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Quest defines quest definition and user quest persistence operations
type Quest interface {
	// Definitions (seeded from config)
	UpsertDefinition(ctx context.Context, def *domain.QuestDefinition) error
	GetDefinitions(ctx context.Context) ([]domain.QuestDefinition, error)
	GetDefinitionByCode(ctx context.Context, code string) (*domain.QuestDefinition, error)

	// User quest instances
	CreateUserQuest(ctx context.Context, uq *domain.UserQuest) error
	GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error)
	GetUserQuestByID(ctx context.Context, userID, userQuestID string) (*domain.UserQuest, error)
	UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error

	// ResetDailyQuests returns every DAILY quest instance that has progress
	// or is past IN_PROGRESS back to a fresh state. Returns the number of
	// rows reset.
	ResetDailyQuests(ctx context.Context) (int64, error)
}
