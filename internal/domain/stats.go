package domain

import "time"

// CharacterStats holds a user's hero progression and resource balances.
// One row per user. Health never exceeds MaxHealth, XP and resource
// balances never go negative.
type CharacterStats struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Level       int        `json:"level"`
	XP          int        `json:"xp"`
	Health      int        `json:"health"`
	MaxHealth   int        `json:"max_health"`
	AttackPower int        `json:"attack_power"`
	Defense     int        `json:"defense"`
	Gold        int        `json:"gold"`
	Diamond     int        `json:"diamond"`
	Bronze      int        `json:"bronze"`
	SkillPoints int        `json:"skill_points"`
	ClassID     *string    `json:"class_id,omitempty"`
	LastSyncAt  time.Time  `json:"last_sync_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Default values for newly onboarded characters
const (
	DefaultLevel       = 1
	DefaultHealth      = 100
	DefaultMaxHealth   = 100
	DefaultAttackPower = 10
	DefaultDefense     = 2
)

// NewDefaultStats returns the stats a character starts with at onboarding
func NewDefaultStats(userID string) *CharacterStats {
	return &CharacterStats{
		UserID:      userID,
		Level:       DefaultLevel,
		Health:      DefaultHealth,
		MaxHealth:   DefaultMaxHealth,
		AttackPower: DefaultAttackPower,
		Defense:     DefaultDefense,
	}
}
