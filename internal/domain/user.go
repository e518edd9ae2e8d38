package domain

import "time"

// User represents a registered player
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile aggregates a user with their game state for API responses.
// Every edge is loaded explicitly by the service layer; there is no live
// object-graph traversal.
type UserProfile struct {
	User
	Stats     *CharacterStats `json:"stats,omitempty"`
	Rules     []DetoxRule     `json:"rules"`
	Quests    []UserQuest     `json:"quests"`
	Buildings []Building      `json:"buildings"`
}
