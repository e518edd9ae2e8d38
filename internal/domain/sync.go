package domain

// BattleSummary is the outcome of one combat resolution against the daily
// boss. XPReward is the boss-kill bonus; it is reported to the caller and
// applied once by the sync flow, never inside the resolver.
type BattleSummary struct {
	PlayerDamageDealt int    `json:"player_damage_dealt"`
	BossDamageDealt   int    `json:"boss_damage_dealt"`
	BossHPRemaining   int    `json:"boss_hp_remaining"`
	PlayerHPRemaining int    `json:"player_hp_remaining"`
	BossDefeated      bool   `json:"boss_defeated"`
	XPReward          int    `json:"xp_reward"`
	BossName          string `json:"boss_name"`
}

// SyncResult is the combined outcome of one usage sync
type SyncResult struct {
	XPGained int             `json:"xp_gained"`
	LevelUp  bool            `json:"level_up"`
	NewStats CharacterStats  `json:"new_stats"`
	Insight  string          `json:"insight,omitempty"`
	Battle   *BattleSummary  `json:"battle,omitempty"`
}
