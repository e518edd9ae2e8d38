package domain

import "time"

// BossEnemy is the per-user, per-day adversary. CurrentHP only ever
// decreases, and IsDefeated flips to true exactly once, when CurrentHP
// reaches 0. A defeated boss is immutable; further syncs that day skip
// combat entirely.
type BossEnemy struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	TotalHP           int       `json:"total_hp"`
	CurrentHP         int       `json:"current_hp"`
	DamageDealtToUser int       `json:"damage_dealt_to_user"`
	IsDefeated        bool      `json:"is_defeated"`
	Day               time.Time `json:"date"`
	CreatedAt         time.Time `json:"created_at"`
}
