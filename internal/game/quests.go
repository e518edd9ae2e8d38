package game

import (
	"time"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// EvaluateQuests advances a user's in-progress quest instances from a
// battle outcome. Quests that are not IN_PROGRESS are skipped, so a
// completed quest never progresses twice; unrecognized codes are left
// untouched. battle is nil when no combat ran this sync — DAILY_SYNC still
// counts, but the combat-dependent quests only move on a real battle.
func (e *Engine) EvaluateQuests(quests []*domain.UserQuest, battle *domain.BattleSummary, now time.Time) {
	for _, uq := range quests {
		if uq == nil || uq.Status != domain.QuestStatusInProgress || uq.Definition == nil {
			continue
		}

		switch uq.Definition.Code {
		case domain.QuestCodeDailySync:
			uq.CurrentProgress = 1
		case domain.QuestCodeFocusMaster:
			if battle != nil && battle.BossDamageDealt == 0 {
				uq.CurrentProgress++
			}
		case domain.QuestCodeBossSlayer:
			if battle != nil && battle.BossDefeated {
				uq.CurrentProgress++
			}
		default:
			// unknown code: forward-compatible no-op
			continue
		}

		if uq.CurrentProgress >= uq.Definition.TargetProgress {
			uq.Status = domain.QuestStatusCompleted
			completedAt := now
			uq.CompletedAt = &completedAt
		}
	}
}
