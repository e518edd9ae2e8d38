package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

func TestSyncDefeatsBossAndLevelsUp(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats() // level 1, xp 0, attack 10, defense 2
	boss := testBoss(100)
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	result := e.Sync(stats, boss, nil, nil, nil, now)

	require.NotNil(t, result.Battle)
	assert.Equal(t, 4800, result.Battle.PlayerDamageDealt)
	assert.True(t, result.Battle.BossDefeated)
	assert.Equal(t, 200, result.Battle.XPReward)

	// 200 kill xp, nothing from the empty log batch; one level-up at 100.
	assert.Equal(t, 200, result.XPGained)
	assert.True(t, result.LevelUp)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 100, stats.XP)
	assert.Equal(t, now, stats.LastSyncAt)
	assert.Equal(t, result.NewStats, *stats)
}

func TestSyncSkipsCombatOnDefeatedBoss(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()
	boss := testBoss(100)
	boss.CurrentHP = 0
	boss.IsDefeated = true

	logs := []domain.UsageLogEntry{{AppPackageName: "com.spotify.music", DurationSeconds: 600}}

	result := e.Sync(stats, boss, nil, logs, nil, time.Now())

	assert.Nil(t, result.Battle, "no combat against a defeated boss")
	assert.Equal(t, 5, result.XPGained, "only the plain reward path runs")
	assert.Contains(t, result.Insight, insightBossResting)
	assert.Equal(t, 0, boss.CurrentHP)
	assert.True(t, boss.IsDefeated)
}

func TestSyncIdempotentOnceDefeated(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()
	boss := testBoss(100)

	first := e.Sync(stats, boss, nil, nil, nil, time.Now())
	require.NotNil(t, first.Battle)
	require.True(t, first.Battle.BossDefeated)
	damageAfterFirst := boss.DamageDealtToUser

	second := e.Sync(stats, boss, nil, nil, nil, time.Now())

	assert.Nil(t, second.Battle)
	assert.Zero(t, second.XPGained, "kill xp is paid exactly once")
	assert.Equal(t, damageAfterFirst, boss.DamageDealtToUser)
	assert.Equal(t, 0, boss.CurrentHP)
}

func TestSyncWithoutBoss(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()

	result := e.Sync(stats, nil, nil, nil, nil, time.Now())

	assert.Nil(t, result.Battle)
	assert.Zero(t, result.XPGained)
	assert.False(t, result.LevelUp)
}

func TestSyncClampsXPAtZero(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()
	stats.XP = 5
	boss := testBoss(1000000) // survives the day

	rules := []domain.DetoxRule{{AppPackageName: "com.instagram.android", DailyLimitMinutes: intPtr(10)}}
	logs := []domain.UsageLogEntry{
		{AppPackageName: "com.instagram.android", DurationSeconds: 30 * 60},
		{AppPackageName: "com.instagram.android", DurationSeconds: 45 * 60},
	}

	result := e.Sync(stats, boss, rules, logs, nil, time.Now())

	assert.Equal(t, -20, result.XPGained, "penalties are reported unclamped")
	assert.Zero(t, stats.XP, "accumulated xp never goes negative")
	assert.False(t, result.LevelUp)
}

func TestSyncEvaluatesQuestsWithBattle(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()
	boss := testBoss(100)

	daily := questInstance(domain.QuestCodeDailySync, 1)
	slayer := questInstance(domain.QuestCodeBossSlayer, 1)
	focus := questInstance(domain.QuestCodeFocusMaster, 1)

	result := e.Sync(stats, boss, nil, nil, []*domain.UserQuest{daily, slayer, focus}, time.Now())

	require.NotNil(t, result.Battle)
	assert.Equal(t, domain.QuestStatusCompleted, daily.Status)
	assert.Equal(t, domain.QuestStatusCompleted, slayer.Status)
	assert.Equal(t, domain.QuestStatusCompleted, focus.Status, "no damage taken on an empty day")
}

func TestSyncLogsAreNotMutated(t *testing.T) {
	e := newTestEngine(1)
	stats := testStats()
	boss := testBoss(100000)

	logs := []domain.UsageLogEntry{{AppPackageName: "com.spotify.music", DurationSeconds: 600}}
	original := make([]domain.UsageLogEntry, len(logs))
	copy(original, logs)

	e.Sync(stats, boss, nil, logs, nil, time.Now())

	assert.Equal(t, original, logs)
}
