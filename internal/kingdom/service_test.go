package kingdom

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/game"
	"github.com/osse101/IdleHero_Go/internal/repository"
)

type fakeKingdomStore struct {
	stats     map[string]*domain.CharacterStats
	buildings map[string]*domain.Building // userID|type
	commits   int
}

func newFakeKingdomStore() *fakeKingdomStore {
	return &fakeKingdomStore{
		stats:     make(map[string]*domain.CharacterStats),
		buildings: make(map[string]*domain.Building),
	}
}

func (f *fakeKingdomStore) putStats(s *domain.CharacterStats) {
	cp := *s
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	f.stats[cp.UserID] = &cp
}

// repository.Stats

func (f *fakeKingdomStore) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	f.putStats(stats)
	return nil
}

func (f *fakeKingdomStore) GetStatsByUserID(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	s, ok := f.stats[userID]
	if !ok {
		return nil, domain.ErrStatsNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeKingdomStore) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	if _, ok := f.stats[stats.UserID]; !ok {
		return domain.ErrStatsNotFound
	}
	cp := *stats
	f.stats[stats.UserID] = &cp
	return nil
}

// repository.Building

func (f *fakeKingdomStore) GetBuildingsByUserID(ctx context.Context, userID string) ([]domain.Building, error) {
	var out []domain.Building
	for _, b := range f.buildings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeKingdomStore) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	b, ok := f.buildings[userID+"|"+buildingType]
	if !ok {
		return nil, domain.ErrBuildingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeKingdomStore) CreateBuilding(ctx context.Context, b *domain.Building) error {
	b.ID = uuid.NewString()
	cp := *b
	f.buildings[b.UserID+"|"+b.BuildingType] = &cp
	return nil
}

func (f *fakeKingdomStore) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	key := b.UserID + "|" + b.BuildingType
	if _, ok := f.buildings[key]; !ok {
		return domain.ErrBuildingNotFound
	}
	cp := *b
	f.buildings[key] = &cp
	return nil
}

// repository.Tx

type fakeKingdomTx struct{ store *fakeKingdomStore }

func (t *fakeKingdomTx) GetStatsForUpdate(ctx context.Context, userID string) (*domain.CharacterStats, error) {
	return t.store.GetStatsByUserID(ctx, userID)
}

func (t *fakeKingdomTx) CreateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return t.store.CreateStats(ctx, stats)
}

func (t *fakeKingdomTx) UpdateStats(ctx context.Context, stats *domain.CharacterStats) error {
	return t.store.UpdateStats(ctx, stats)
}

func (t *fakeKingdomTx) GetBossForDay(ctx context.Context, userID string, day time.Time) (*domain.BossEnemy, error) {
	return nil, domain.ErrBossNotFound
}

func (t *fakeKingdomTx) CreateBoss(ctx context.Context, boss *domain.BossEnemy) error { return nil }
func (t *fakeKingdomTx) UpdateBoss(ctx context.Context, boss *domain.BossEnemy) error { return nil }

func (t *fakeKingdomTx) GetRulesByUserID(ctx context.Context, userID string) ([]domain.DetoxRule, error) {
	return nil, nil
}

func (t *fakeKingdomTx) GetUserQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	return nil, nil
}

func (t *fakeKingdomTx) UpdateUserQuest(ctx context.Context, uq *domain.UserQuest) error { return nil }

func (t *fakeKingdomTx) InsertLogs(ctx context.Context, userID string, logs []domain.UsageLogEntry) error {
	return nil
}

func (t *fakeKingdomTx) GetBuilding(ctx context.Context, userID, buildingType string) (*domain.Building, error) {
	return t.store.GetBuilding(ctx, userID, buildingType)
}

func (t *fakeKingdomTx) CreateBuilding(ctx context.Context, b *domain.Building) error {
	return t.store.CreateBuilding(ctx, b)
}

func (t *fakeKingdomTx) UpdateBuilding(ctx context.Context, b *domain.Building) error {
	return t.store.UpdateBuilding(ctx, b)
}

func (t *fakeKingdomTx) Commit(ctx context.Context) error {
	t.store.commits++
	return nil
}

func (t *fakeKingdomTx) Rollback(ctx context.Context) error { return nil }

type fakeKingdomTxManager struct{ store *fakeKingdomStore }

func (m *fakeKingdomTxManager) Begin(ctx context.Context) (repository.Tx, error) {
	return &fakeKingdomTx{store: m.store}, nil
}

func newTestService(t *testing.T, store *fakeKingdomStore) (Service, *event.MemoryBus) {
	t.Helper()

	bus := event.NewMemoryBus()
	pub, err := event.NewResilientPublisher(bus, 3, 10*time.Millisecond, filepath.Join(t.TempDir(), "dead_letter.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = pub.Shutdown(ctx)
	})

	eng := game.NewEngine(game.DefaultTuning(), rand.New(rand.NewSource(3))) //nolint:gosec
	return NewService(&fakeKingdomTxManager{store: store}, store, store, eng, pub), bus
}

func richStats(userID string) *domain.CharacterStats {
	s := domain.NewDefaultStats(userID)
	s.Bronze = 10000
	s.Gold = 2000
	s.Diamond = 100
	return s
}

func TestConstruct(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, bus := newTestService(t, store)
	var constructed []event.Event
	bus.Subscribe(event.BuildingConstructed, func(ctx context.Context, e event.Event) error {
		constructed = append(constructed, e)
		return nil
	})

	b, err := svc.Construct(context.Background(), userID, "mine")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Level)
	assert.NotEmpty(t, b.ID)

	// Base mine cost: 500 bronze, 50 gold.
	stats := store.stats[userID]
	assert.Equal(t, 9500, stats.Bronze)
	assert.Equal(t, 1950, stats.Gold)
	assert.Equal(t, 100, stats.Diamond)
	assert.Equal(t, 1, store.commits)

	require.Len(t, constructed, 1)
	payload, err := event.DecodePayload[event.BuildingPayloadV1](constructed[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "mine", payload.BuildingType)
	assert.Equal(t, 50, payload.GoldSpent)
}

func TestConstruct_AlreadyExists(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, _ := newTestService(t, store)

	_, err := svc.Construct(context.Background(), userID, "park")
	require.NoError(t, err)

	_, err = svc.Construct(context.Background(), userID, "park")
	assert.ErrorIs(t, err, domain.ErrBuildingExists)
}

func TestConstruct_InsufficientResources(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(domain.NewDefaultStats(userID)) // broke

	svc, _ := newTestService(t, store)

	_, err := svc.Construct(context.Background(), userID, "town_hall")
	assert.ErrorIs(t, err, domain.ErrInsufficientResources)

	// Nothing persisted.
	stats := store.stats[userID]
	assert.Equal(t, 0, stats.Bronze)
	assert.Empty(t, store.buildings)
	assert.Equal(t, 0, store.commits)
}

func TestConstruct_UnknownType(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, _ := newTestService(t, store)

	_, err := svc.Construct(context.Background(), userID, "moat")
	assert.ErrorIs(t, err, domain.ErrUnknownBuildingType)
}

func TestUpgrade(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, bus := newTestService(t, store)
	var upgraded []event.Event
	bus.Subscribe(event.BuildingUpgraded, func(ctx context.Context, e event.Event) error {
		upgraded = append(upgraded, e)
		return nil
	})

	_, err := svc.Construct(context.Background(), userID, "mine")
	require.NoError(t, err)

	b, err := svc.Upgrade(context.Background(), userID, "mine")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Level)

	// Level 1 -> 2 costs base * 1.5: 750 bronze, 75 gold.
	stats := store.stats[userID]
	assert.Equal(t, 10000-500-750, stats.Bronze)
	assert.Equal(t, 2000-50-75, stats.Gold)

	require.Len(t, upgraded, 1)
	payload, err := event.DecodePayload[event.BuildingPayloadV1](upgraded[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Level)
}

func TestUpgrade_BuildingNotFound(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, _ := newTestService(t, store)

	_, err := svc.Upgrade(context.Background(), userID, "hospital")
	assert.ErrorIs(t, err, domain.ErrBuildingNotFound)
}

func TestGetKingdom(t *testing.T) {
	store := newFakeKingdomStore()
	userID := uuid.NewString()
	store.putStats(richStats(userID))

	svc, _ := newTestService(t, store)

	_, err := svc.Construct(context.Background(), userID, "mine")
	require.NoError(t, err)
	_, err = svc.Construct(context.Background(), userID, "park")
	require.NoError(t, err)

	k, err := svc.GetKingdom(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, k.Buildings, 2)
	assert.Equal(t, 10000-500-200, k.Bronze)
	assert.Equal(t, 2000-50-100, k.Gold)
}

func TestGetKingdom_UserNotFound(t *testing.T) {
	store := newFakeKingdomStore()
	svc, _ := newTestService(t, store)

	_, err := svc.GetKingdom(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
