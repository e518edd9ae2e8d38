package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

func questInstance(code string, target int) *domain.UserQuest {
	return &domain.UserQuest{
		ID:      "uq-" + code,
		UserID:  "user-1",
		Status:  domain.QuestStatusInProgress,
		Definition: &domain.QuestDefinition{
			Code:           code,
			TargetProgress: target,
		},
	}
}

func TestEvaluateQuestsFocusMasterCompletes(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeFocusMaster, 1)
	now := time.Now()

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDamageDealt: 0}, now)

	assert.Equal(t, domain.QuestStatusCompleted, uq.Status)
	assert.Equal(t, 1, uq.CurrentProgress)
	require.NotNil(t, uq.CompletedAt)
	assert.Equal(t, now, *uq.CompletedAt)
}

func TestEvaluateQuestsFocusMasterFailsOnDamage(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeFocusMaster, 1)

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDamageDealt: 50}, time.Now())

	assert.Equal(t, domain.QuestStatusInProgress, uq.Status)
	assert.Zero(t, uq.CurrentProgress)
	assert.Nil(t, uq.CompletedAt)
}

func TestEvaluateQuestsBossSlayer(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeBossSlayer, 1)

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDefeated: false}, time.Now())
	assert.Zero(t, uq.CurrentProgress)

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDefeated: true}, time.Now())
	assert.Equal(t, domain.QuestStatusCompleted, uq.Status)
}

func TestEvaluateQuestsDailySyncWithoutBattle(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeDailySync, 1)

	// No battle ran this sync; a daily sync still counts.
	e.EvaluateQuests([]*domain.UserQuest{uq}, nil, time.Now())

	assert.Equal(t, domain.QuestStatusCompleted, uq.Status)
	assert.Equal(t, 1, uq.CurrentProgress)
}

func TestEvaluateQuestsCombatQuestsNeedABattle(t *testing.T) {
	e := newTestEngine(1)
	focus := questInstance(domain.QuestCodeFocusMaster, 1)
	slayer := questInstance(domain.QuestCodeBossSlayer, 1)

	e.EvaluateQuests([]*domain.UserQuest{focus, slayer}, nil, time.Now())

	assert.Zero(t, focus.CurrentProgress)
	assert.Zero(t, slayer.CurrentProgress)
}

func TestEvaluateQuestsSkipsCompleted(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeDailySync, 1)
	uq.Status = domain.QuestStatusCompleted
	uq.CurrentProgress = 1

	e.EvaluateQuests([]*domain.UserQuest{uq}, nil, time.Now())

	assert.Equal(t, 1, uq.CurrentProgress, "completed quests never progress again")
}

func TestEvaluateQuestsUnknownCodeUntouched(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance("SCREEN_FREE_SUNDAY", 3)

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDefeated: true}, time.Now())

	assert.Equal(t, domain.QuestStatusInProgress, uq.Status)
	assert.Zero(t, uq.CurrentProgress)
}

func TestEvaluateQuestsMultiStepProgress(t *testing.T) {
	e := newTestEngine(1)
	uq := questInstance(domain.QuestCodeBossSlayer, 3)

	for i := 0; i < 2; i++ {
		e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDefeated: true}, time.Now())
	}
	assert.Equal(t, domain.QuestStatusInProgress, uq.Status)
	assert.Equal(t, 2, uq.CurrentProgress)

	e.EvaluateQuests([]*domain.UserQuest{uq}, &domain.BattleSummary{BossDefeated: true}, time.Now())
	assert.Equal(t, domain.QuestStatusCompleted, uq.Status)
}
