package usage

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/game"
)

func newTestService(t *testing.T, store *fakeStore) (*service, *event.MemoryBus) {
	t.Helper()

	bus := event.NewMemoryBus()
	pub, err := event.NewResilientPublisher(bus, 3, 10*time.Millisecond, filepath.Join(t.TempDir(), "dead_letter.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = pub.Shutdown(ctx)
	})

	eng := game.NewEngine(game.DefaultTuning(), rand.New(rand.NewSource(42))) //nolint:gosec
	svc := NewService(&fakeTxManager{store: store}, store, store, store, eng, pub)
	return svc.(*service), bus
}

func captureEvents(bus *event.MemoryBus, types ...event.Type) *[]event.Event {
	var seen []event.Event
	for _, typ := range types {
		bus.Subscribe(typ, func(ctx context.Context, e event.Event) error {
			seen = append(seen, e)
			return nil
		})
	}
	return &seen
}

func TestSyncUsage_GrantsXPAndPersists(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	store.putStats(domain.NewDefaultStats(user.ID))

	svc, bus := newTestService(t, store)
	seen := captureEvents(bus, event.SyncCompleted)

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Today's boss is already down, so no combat muddies the XP math.
	store.putBoss(&domain.BossEnemy{
		UserID: user.ID, Name: "Doom Scroller",
		TotalHP: 100, CurrentHP: 0, IsDefeated: true,
		Day: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})

	limit := 30
	store.rules[user.ID] = []domain.DetoxRule{
		{ID: "r1", UserID: user.ID, AppPackageName: "com.example.social", DailyLimitMinutes: &limit, ActiveDays: domain.DefaultActiveDays},
	}

	logs := []domain.UsageLogEntry{
		{AppPackageName: "com.example.social", DurationSeconds: 600},  // within limit: +20
		{AppPackageName: "com.example.reader", DurationSeconds: 1200}, // unmatched: +5
	}

	result, err := svc.SyncUsage(context.Background(), user.ID, logs)
	require.NoError(t, err)

	assert.Equal(t, 25, result.XPGained)
	assert.False(t, result.LevelUp)
	assert.Nil(t, result.Battle)
	assert.Contains(t, result.Insight, "Good job!")

	persisted, err := store.GetStatsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, persisted.XP)
	assert.Equal(t, now, persisted.LastSyncAt)

	assert.Len(t, store.logs[user.ID], 2)
	assert.Equal(t, 1, store.commits)

	require.Len(t, *seen, 1)
	payload, err := event.DecodePayload[event.SyncCompletedPayloadV1]((*seen)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, 25, payload.XPGained)
	assert.Equal(t, 2, payload.LogCount)
}

func TestSyncUsage_FirstSyncCreatesStatsAndBoss(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("bob")

	svc, bus := newTestService(t, store)
	seen := captureEvents(bus, event.SyncCompleted, event.BossDefeated, event.LevelUp)

	result, err := svc.SyncUsage(context.Background(), user.ID, []domain.UsageLogEntry{
		{AppPackageName: "com.example.reader", DurationSeconds: 300},
	})
	require.NoError(t, err)

	// No blocked apps: a full focus day one-shots a level-1 boss.
	require.NotNil(t, result.Battle)
	assert.True(t, result.Battle.BossDefeated)
	assert.True(t, result.LevelUp)

	stats, err := store.GetStatsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Greater(t, stats.Level, 1)

	day := midnightUTC(time.Now().UTC())
	boss, err := store.GetBossForDay(context.Background(), user.ID, day)
	require.NoError(t, err)
	assert.True(t, boss.IsDefeated)
	assert.Equal(t, 0, boss.CurrentHP)

	types := make(map[event.Type]int)
	for _, e := range *seen {
		types[e.Type]++
	}
	assert.Equal(t, 1, types[event.SyncCompleted])
	assert.Equal(t, 1, types[event.BossDefeated])
	assert.Equal(t, 1, types[event.LevelUp])
}

func TestSyncUsage_UserNotFound(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.SyncUsage(context.Background(), "00000000-0000-0000-0000-000000000000", nil)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, store.commits)
}

func TestSyncUsage_DefeatedBossStaysDown(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("carol")
	store.putStats(domain.NewDefaultStats(user.ID))

	svc, _ := newTestService(t, store)
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	store.putBoss(&domain.BossEnemy{
		UserID: user.ID, Name: "Algorithm Beast",
		TotalHP: 120, CurrentHP: 0, IsDefeated: true,
		Day: midnightUTC(now),
	})

	result, err := svc.SyncUsage(context.Background(), user.ID, nil)
	require.NoError(t, err)

	assert.Nil(t, result.Battle)
	assert.Contains(t, result.Insight, "already defeated")

	boss, err := store.GetBossForDay(context.Background(), user.ID, midnightUTC(now))
	require.NoError(t, err)
	assert.True(t, boss.IsDefeated)
	assert.Equal(t, 0, boss.CurrentHP)
}

func TestSyncUsage_CompletesDailySyncQuest(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("dana")
	store.putStats(domain.NewDefaultStats(user.ID))

	svc, bus := newTestService(t, store)
	seen := captureEvents(bus, event.QuestCompleted)

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	store.putBoss(&domain.BossEnemy{
		UserID: user.ID, Name: "FOMO Specter",
		TotalHP: 100, CurrentHP: 0, IsDefeated: true,
		Day: midnightUTC(now),
	})

	store.putQuest(domain.UserQuest{
		UserID:  user.ID,
		QuestID: "q-daily",
		Status:  domain.QuestStatusInProgress,
		Definition: &domain.QuestDefinition{
			ID: "q-daily", Code: domain.QuestCodeDailySync,
			TargetProgress: 1, RewardXP: 50, RewardGold: 20,
		},
	})

	_, err := svc.SyncUsage(context.Background(), user.ID, nil)
	require.NoError(t, err)

	quests := store.quests[user.ID]
	require.Len(t, quests, 1)
	assert.Equal(t, domain.QuestStatusCompleted, quests[0].Status)
	require.NotNil(t, quests[0].CompletedAt)
	assert.Equal(t, now, *quests[0].CompletedAt)

	require.Len(t, *seen, 1)
	payload, err := event.DecodePayload[event.QuestPayloadV1]((*seen)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.QuestCodeDailySync, payload.QuestCode)
}

func TestGetTodaysBoss_CreatesOnce(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("erin")
	store.putStats(domain.NewDefaultStats(user.ID))

	svc, _ := newTestService(t, store)

	first, err := svc.GetTodaysBoss(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, first.Name)
	assert.Equal(t, first.TotalHP, first.CurrentHP)
	assert.GreaterOrEqual(t, first.TotalHP, 100)
	assert.LessOrEqual(t, first.TotalHP, 150)

	second, err := svc.GetTodaysBoss(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
}

func TestGetTodaysBoss_UserNotFound(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.GetTodaysBoss(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
