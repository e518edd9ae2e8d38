package game

import (
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// ResolveBattle runs one day's combat between the player and the boss.
// Focus minutes (waking budget minus time on rule-blocked apps) become
// player damage; blocked minutes become boss damage, reduced by defense.
// HP is clamped at zero on both sides. When the boss falls the kill XP is
// returned in the summary, not applied, so the sync flow can apply it
// exactly once alongside the ordinary reward delta.
//
// Callers must not invoke this on a boss whose IsDefeated flag is already
// set; Sync enforces that.
func (e *Engine) ResolveBattle(stats *domain.CharacterStats, logs []domain.UsageLogEntry, boss *domain.BossEnemy, rules []domain.DetoxRule) domain.BattleSummary {
	blocked := make(map[string]bool)
	for _, r := range rules {
		if r.IsBlocked {
			blocked[r.AppPackageName] = true
		}
	}

	blockedSeconds := 0
	for _, entry := range logs {
		if blocked[entry.AppPackageName] {
			blockedSeconds += entry.DurationSeconds
		}
	}
	blockedMinutes := float64(blockedSeconds) / 60

	focusMinutes := float64(e.tuning.WakingMinutes) - blockedMinutes
	if focusMinutes < 0 {
		focusMinutes = 0
	}

	// Player attacks boss
	playerDamage := int(focusMinutes * float64(stats.AttackPower))
	boss.CurrentHP -= playerDamage
	if boss.CurrentHP < 0 {
		boss.CurrentHP = 0
	}

	// Boss attacks player
	rawBossDamage := int(blockedMinutes * float64(e.tuning.BossDamagePerMin))
	actualBossDamage := rawBossDamage - stats.Defense
	if actualBossDamage < 0 {
		actualBossDamage = 0
	}
	stats.Health -= actualBossDamage
	if stats.Health < 0 {
		stats.Health = 0
	}
	boss.DamageDealtToUser += actualBossDamage

	xpReward := 0
	if boss.CurrentHP == 0 {
		boss.IsDefeated = true
		xpReward = boss.TotalHP * e.tuning.BossKillXPMult
	}

	return domain.BattleSummary{
		PlayerDamageDealt: playerDamage,
		BossDamageDealt:   actualBossDamage,
		BossHPRemaining:   boss.CurrentHP,
		PlayerHPRemaining: stats.Health,
		BossDefeated:      boss.IsDefeated,
		XPReward:          xpReward,
		BossName:          boss.Name,
	}
}

// GenerateBoss creates a fresh daily boss scaled to the player level.
// Total HP is floor(baseHP * level * U(min,max)) with the multiplier drawn
// from the engine's random source; the name comes from the configured pool.
func (e *Engine) GenerateBoss(userID string, playerLevel int, day time.Time) *domain.BossEnemy {
	if playerLevel < 1 {
		playerLevel = 1
	}

	mult := e.tuning.BossHPMinMult + e.rng.Float64()*(e.tuning.BossHPMaxMult-e.tuning.BossHPMinMult)
	totalHP := int(float64(e.tuning.BossBaseHP) * float64(playerLevel) * mult)
	name := e.tuning.BossNames[e.rng.Intn(len(e.tuning.BossNames))]

	return &domain.BossEnemy{
		UserID:    userID,
		Name:      name,
		TotalHP:   totalHP,
		CurrentHP: totalHP,
		Day:       day,
	}
}
