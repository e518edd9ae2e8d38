package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// fakeRepository is a stateful in-memory implementation of the user, stats,
// rule, quest, and building repositories.
type fakeRepository struct {
	users     map[string]*domain.User
	stats     map[string]*domain.CharacterStats
	rules     map[string][]domain.DetoxRule
	defs      []domain.QuestDefinition
	quests    map[string][]domain.UserQuest
	buildings map[string][]domain.Building

	failCreateStats error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:     make(map[string]*domain.User),
		stats:     make(map[string]*domain.CharacterStats),
		rules:     make(map[string][]domain.DetoxRule),
		quests:    make(map[string][]domain.UserQuest),
		buildings: make(map[string][]domain.Building),
	}
}

func (f *fakeRepository) CreateUser(ctx context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepository) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	if f.failCreateStats != nil {
		return f.failCreateStats
	}
	stats.ID = uuid.NewString()
	cp := *stats
	f.stats[stats.UserID] = &cp
	return nil
}

func (f *fakeRepository) GetStatsByUserID(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	s, ok := f.stats[userID]
	if !ok {
		return nil, domain.ErrStatsNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepository) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	if _, ok := f.stats[stats.UserID]; !ok {
		return domain.ErrStatsNotFound
	}
	cp := *stats
	f.stats[stats.UserID] = &cp
	return nil
}

func (f *fakeRepository) CreateRule(ctx context.Context, rule *domain.DetoxRule) error {
	rule.ID = uuid.NewString()
	f.rules[rule.UserID] = append(f.rules[rule.UserID], *rule)
	return nil
}

func (f *fakeRepository) GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	return append([]domain.DetoxRule(nil), f.rules[userID]...), nil
}

func (f *fakeRepository) DeleteRule(ctx context.Context, userID, ruleID string) error {
	list := f.rules[userID]
	for i := range list {
		if list[i].ID == ruleID {
			f.rules[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrRuleNotFound
}

func (f *fakeRepository) UpsertDefinition(ctx context.Context, def *domain.QuestDefinition) error {
	for i := range f.defs {
		if f.defs[i].Code == def.Code {
			def.ID = f.defs[i].ID
			f.defs[i] = *def
			return nil
		}
	}
	def.ID = uuid.NewString()
	f.defs = append(f.defs, *def)
	return nil
}

func (f *fakeRepository) GetDefinitions(ctx context.Context) ([]domain.QuestDefinition, error) {
	return append([]domain.QuestDefinition(nil), f.defs...), nil
}

func (f *fakeRepository) GetDefinitionByCode(ctx context.Context, code string) (*domain.QuestDefinition, error) {
	for i := range f.defs {
		if f.defs[i].Code == code {
			cp := f.defs[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrQuestNotFound
}

func (f *fakeRepository) CreateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	for _, existing := range f.quests[uq.UserID] {
		if existing.QuestID == uq.QuestID {
			return nil
		}
	}
	uq.ID = uuid.NewString()
	f.quests[uq.UserID] = append(f.quests[uq.UserID], *uq)
	return nil
}

func (f *fakeRepository) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	return append([]domain.UserQuest(nil), f.quests[userID]...), nil
}

func (f *fakeRepository) GetUserQuestByID(ctx context.Context, userID, userQuestID string) (*domain.UserQuest, error) {
	for _, uq := range f.quests[userID] {
		if uq.ID == userQuestID {
			cp := uq
			return &cp, nil
		}
	}
	return nil, domain.ErrQuestNotFound
}

func (f *fakeRepository) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	list := f.quests[uq.UserID]
	for i := range list {
		if list[i].ID == uq.ID {
			list[i] = *uq
			return nil
		}
	}
	return domain.ErrQuestNotFound
}

func (f *fakeRepository) ResetDailyQuests(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeRepository) GetBuildingsByUserID(ctx context.Context, userID string) ([]domain.Building, error) {
	return append([]domain.Building(nil), f.buildings[userID]...), nil
}

func (f *fakeRepository) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	for _, b := range f.buildings[userID] {
		if b.BuildingType == buildingType {
			cp := b
			return &cp, nil
		}
	}
	return nil, domain.ErrBuildingNotFound
}

func (f *fakeRepository) CreateBuilding(ctx context.Context, b *domain.Building) error {
	b.ID = uuid.NewString()
	f.buildings[b.UserID] = append(f.buildings[b.UserID], *b)
	return nil
}

func (f *fakeRepository) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	list := f.buildings[b.UserID]
	for i := range list {
		if list[i].BuildingType == b.BuildingType {
			list[i] = *b
			return nil
		}
	}
	return domain.ErrBuildingNotFound
}
