package domain

import "time"

// QuestStatus is the lifecycle state of a user's quest instance.
// Transitions are strictly forward: IN_PROGRESS -> COMPLETED -> CLAIMED.
type QuestStatus string

const (
	QuestStatusInProgress QuestStatus = "IN_PROGRESS"
	QuestStatusCompleted  QuestStatus = "COMPLETED"
	QuestStatusClaimed    QuestStatus = "CLAIMED"
)

// Quest code constants used for progress dispatch
const (
	QuestCodeDailySync   = "DAILY_SYNC"
	QuestCodeFocusMaster = "FOCUS_MASTER"
	QuestCodeBossSlayer  = "BOSS_SLAYER"
)

// QuestDefinition is a static quest template, seeded from config
type QuestDefinition struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	QuestType      string    `json:"quest_type"`
	TargetProgress int       `json:"target_progress"`
	RewardXP       int       `json:"reward_xp"`
	RewardGold     int       `json:"reward_gold"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserQuest links a user to a quest definition and tracks progress.
// CurrentProgress is monotonically non-decreasing while IN_PROGRESS.
type UserQuest struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	QuestID         string      `json:"quest_id"`
	Status          QuestStatus `json:"status"`
	CurrentProgress int         `json:"current_progress"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	ClaimedAt       *time.Time  `json:"claimed_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`

	// Joined definition, loaded explicitly by the repository
	Definition *QuestDefinition `json:"definition,omitempty"`
}

// QuestTemplate is a quest definition as it appears in the seed config
type QuestTemplate struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	QuestType      string `json:"quest_type"`
	TargetProgress int    `json:"target_progress"`
	RewardXP       int    `json:"reward_xp"`
	RewardGold     int    `json:"reward_gold"`
}

// QuestPoolConfig is the quest definitions configuration file
type QuestPoolConfig struct {
	Version string          `json:"version"`
	Quests  []QuestTemplate `json:"quests"`
}

// ClaimResult is the outcome of claiming a completed quest's reward
type ClaimResult struct {
	Quest      UserQuest      `json:"quest"`
	RewardXP   int            `json:"reward_xp"`
	RewardGold int            `json:"reward_gold"`
	LevelUp    bool           `json:"level_up"`
	NewStats   CharacterStats `json:"new_stats"`
}
