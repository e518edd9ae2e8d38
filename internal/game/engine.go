package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Engine is the progression and combat resolution core. It is a pure
// calculation layer: it mutates the entities handed to it in place and
// returns derived summaries, but it never touches storage and performs no
// locking. The caller serializes access per user.
type Engine struct {
	tuning Tuning
	rng    *rand.Rand
}

// NewEngine creates an engine with the given tuning and random source.
// The random source drives boss generation only; pass a seeded source in
// tests for deterministic bosses.
func NewEngine(tuning Tuning, rng *rand.Rand) *Engine {
	return &Engine{tuning: tuning, rng: rng}
}

// insightBossResting is appended when the day's boss was defeated on an
// earlier sync and combat was skipped.
const insightBossResting = "Today's boss is already defeated. Enjoy the quiet."

// Sync runs one usage sync: combat (unless the boss is already down),
// rule-based rewards, level-ups, and quest evaluation, in that order.
// boss may be nil when no boss exists for today; combat is then skipped the
// same way it is for a defeated boss. All entities are mutated in place.
func (e *Engine) Sync(stats *domain.CharacterStats, boss *domain.BossEnemy, rules []domain.DetoxRule, logs []domain.UsageLogEntry, quests []*domain.UserQuest, now time.Time) domain.SyncResult {
	var battle *domain.BattleSummary
	bossBonus := 0

	// A defeated boss is terminal: never re-resolve combat for it.
	if boss != nil && !boss.IsDefeated {
		summary := e.ResolveBattle(stats, logs, boss, rules)
		battle = &summary
		bossBonus = summary.XPReward
	}

	rewardDelta, message := e.CalculateRewards(logs, rules)

	totalDelta := rewardDelta + bossBonus
	stats.XP += totalDelta
	if stats.XP < 0 {
		stats.XP = 0
	}

	leveledUp, levelMsg := e.ApplyLevelUps(stats)

	e.EvaluateQuests(quests, battle, now)

	stats.LastSyncAt = now

	var insight strings.Builder
	insight.WriteString(message)
	if battle != nil && battle.BossDefeated {
		insight.WriteString(" You defeated " + battle.BossName + "!")
	} else if boss != nil && boss.IsDefeated && battle == nil {
		insight.WriteString(" " + insightBossResting)
	}
	if leveledUp {
		insight.WriteString(" " + levelMsg)
	}

	return domain.SyncResult{
		XPGained: totalDelta,
		LevelUp:  leveledUp,
		NewStats: *stats,
		Insight:  insight.String(),
		Battle:   battle,
	}
}
