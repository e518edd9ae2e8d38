package game

import "github.com/osse101/IdleHero_Go/internal/domain"

// MsgLevelUp is the message returned for the first level transition
const MsgLevelUp = "LEVEL UP! City expanded."

// ApplyLevelUps consumes accumulated XP against the curve, carrying the
// remainder into the new level. It loops so one large grant can produce
// several transitions; each transition heals to the then-current maximum
// before the per-level bonuses raise it.
func (e *Engine) ApplyLevelUps(stats *domain.CharacterStats) (leveledUp bool, message string) {
	if stats.Level < 1 {
		stats.Level = 1
	}

	for stats.XP >= e.XPRequired(stats.Level) {
		stats.XP -= e.XPRequired(stats.Level)
		stats.Level++

		stats.Health = stats.MaxHealth
		stats.MaxHealth += e.tuning.LevelMaxHealthBonus
		stats.AttackPower += e.tuning.LevelAttackBonus

		stats.Gold += e.tuning.LevelGoldBonus
		stats.Diamond += e.tuning.LevelDiamondBonus

		leveledUp = true
	}

	if leveledUp {
		message = MsgLevelUp
	}
	return leveledUp, message
}
