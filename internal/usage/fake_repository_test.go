package usage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

// fakeStore is a stateful in-memory backend shared by the fake repositories
// and the fake transaction. It hands out copies so mutations only land when
// the service writes them back, mirroring real persistence.
type fakeStore struct {
	mu sync.Mutex

	users     map[string]*domain.User
	stats     map[string]*domain.CharacterStats
	bosses    map[string]*domain.BossEnemy // userID|day
	rules     map[string][]domain.DetoxRule
	quests    map[string][]domain.UserQuest
	logs      map[string][]domain.UsageLogEntry
	buildings map[string]*domain.Building // userID|type

	commits   int
	rollbacks int

	failUpdateStats error
	failCreateBoss  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]*domain.User),
		stats:     make(map[string]*domain.CharacterStats),
		bosses:    make(map[string]*domain.BossEnemy),
		rules:     make(map[string][]domain.DetoxRule),
		quests:    make(map[string][]domain.UserQuest),
		logs:      make(map[string][]domain.UsageLogEntry),
		buildings: make(map[string]*domain.Building),
	}
}

func bossKey(userID string, day time.Time) string {
	return userID + "|" + day.UTC().Format("2006-01-02")
}

func (f *fakeStore) addUser(username string) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &domain.User{ID: uuid.NewString(), Username: username, CreatedAt: time.Now()}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) putStats(s *domain.CharacterStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	f.stats[cp.UserID] = &cp
}

func (f *fakeStore) putBoss(b *domain.BossEnemy) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *b
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	f.bosses[bossKey(cp.UserID, cp.Day)] = &cp
}

func (f *fakeStore) putQuest(uq domain.UserQuest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if uq.ID == "" {
		uq.ID = uuid.NewString()
	}
	f.quests[uq.UserID] = append(f.quests[uq.UserID], uq)
}

// repository.User

func (f *fakeStore) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.NewString()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// repository.Stats

func (f *fakeStore) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats.ID = uuid.NewString()
	cp := *stats
	f.stats[stats.UserID] = &cp
	return nil
}

func (f *fakeStore) GetStatsByUserID(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stats[userID]
	if !ok {
		return nil, domain.ErrStatsNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateStats != nil {
		return f.failUpdateStats
	}
	if _, ok := f.stats[stats.UserID]; !ok {
		return domain.ErrStatsNotFound
	}
	cp := *stats
	f.stats[stats.UserID] = &cp
	return nil
}

// repository.Boss

func (f *fakeStore) GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bosses[bossKey(userID, day)]
	if !ok {
		return nil, domain.ErrBossNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) CreateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateBoss != nil {
		return f.failCreateBoss
	}
	boss.ID = uuid.NewString()
	cp := *boss
	f.bosses[bossKey(boss.UserID, boss.Day)] = &cp
	return nil
}

func (f *fakeStore) UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := bossKey(boss.UserID, boss.Day)
	if _, ok := f.bosses[key]; !ok {
		return domain.ErrBossNotFound
	}
	cp := *boss
	f.bosses[key] = &cp
	return nil
}

func (f *fakeStore) DeleteBossesForUser(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k, b := range f.bosses {
		if b.UserID == userID {
			delete(f.bosses, k)
			n++
		}
	}
	return n, nil
}

// fakeTx operates directly on the store; Commit and Rollback only count.

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) GetStatsForUpdate(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	return t.store.GetStatsByUserID(ctx, userID)
}

func (t *fakeTx) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return t.store.CreateStats(ctx, stats)
}

func (t *fakeTx) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return t.store.UpdateStats(ctx, stats)
}

func (t *fakeTx) GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error) {
	return t.store.GetBossForDay(ctx, userID, day)
}

func (t *fakeTx) CreateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return t.store.CreateBoss(ctx, boss)
}

func (t *fakeTx) UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error {
	return t.store.UpdateBoss(ctx, boss)
}

func (t *fakeTx) GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return append([]domain.DetoxRule(nil), t.store.rules[userID]...), nil
}

func (t *fakeTx) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return append([]domain.UserQuest(nil), t.store.quests[userID]...), nil
}

func (t *fakeTx) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	list := t.store.quests[uq.UserID]
	for i := range list {
		if list[i].ID == uq.ID {
			list[i] = *uq
			return nil
		}
	}
	return domain.ErrQuestNotFound
}

func (t *fakeTx) InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.logs[userID] = append(t.store.logs[userID], logs...)
	return nil
}

func (t *fakeTx) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	b, ok := t.store.buildings[userID+"|"+buildingType]
	if !ok {
		return nil, domain.ErrBuildingNotFound
	}
	cp := *b
	return &cp, nil
}

func (t *fakeTx) CreateBuilding(ctx context.Context, b *domain.Building) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	b.ID = uuid.NewString()
	cp := *b
	t.store.buildings[b.UserID+"|"+b.BuildingType] = &cp
	return nil
}

func (t *fakeTx) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	key := b.UserID + "|" + b.BuildingType
	if _, ok := t.store.buildings[key]; !ok {
		return domain.ErrBuildingNotFound
	}
	cp := *b
	t.store.buildings[key] = &cp
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.rollbacks++
	return nil
}

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Begin(ctx context.Context) (repository.Tx, error) {
	return &fakeTx{store: m.store}, nil
}
