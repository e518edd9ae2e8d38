package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Tuning is the immutable balance configuration for the engine. All gameplay
// constants live here instead of package-level globals so tests and future
// rebalancing can construct engines with different values.
type Tuning struct {
	// XP curve: xpRequired(level) = floor(BaseXP * level^XPFactor)
	BaseXP   int
	XPFactor float64

	// Reward calculator
	DefaultXP int // unmatched app
	RewardXP  int // matched rule, within limit
	PenaltyXP int // matched rule, over limit (subtracted)

	// Boss combat
	WakingMinutes      int // assumed daily waking budget
	BossDamagePerMin   int
	BossBaseHP         int
	BossHPMinMult      float64
	BossHPMaxMult      float64
	BossKillXPMult     int
	BossNames          []string

	// Level-up bonuses
	LevelMaxHealthBonus int
	LevelAttackBonus    int
	LevelGoldBonus      int
	LevelDiamondBonus   int

	// Building economy
	BuildingCosts     map[string]domain.ResourceCost
	UpgradeCostFactor float64
}

// DefaultTuning returns the canonical balance values
func DefaultTuning() Tuning {
	return Tuning{
		BaseXP:   100,
		XPFactor: 1.5,

		DefaultXP: 5,
		RewardXP:  20,
		PenaltyXP: 10,

		WakingMinutes:    480,
		BossDamagePerMin: 1,
		BossBaseHP:       100,
		BossHPMinMult:    1.0,
		BossHPMaxMult:    1.5,
		BossKillXPMult:   2,
		BossNames: []string{
			"Doom Scroller", "Procrastination Demon", "Infinite Feed Phantom",
			"Notification Wraith", "Algorithm Beast", "Clickbait Goblin",
			"FOMO Specter", "Blue Light Vampire", "Distraction Drake", "Meme Lord of Chaos",
		},

		LevelMaxHealthBonus: 10,
		LevelAttackBonus:    1,
		LevelGoldBonus:      100,
		LevelDiamondBonus:   5,

		BuildingCosts: map[string]domain.ResourceCost{
			"mine":         {Bronze: 500, Gold: 50, Diamond: 0},
			"park":         {Bronze: 200, Gold: 100, Diamond: 0},
			"school":       {Bronze: 1000, Gold: 200, Diamond: 5},
			"fire_station": {Bronze: 1500, Gold: 300, Diamond: 10},
			"hospital":     {Bronze: 2000, Gold: 500, Diamond: 20},
			"town_hall":    {Bronze: 5000, Gold: 1000, Diamond: 50},
		},
		UpgradeCostFactor: 1.5,
	}
}

// LoadBuildingCosts overlays the building cost table from a JSON config file.
// Missing file fields fall back to the defaults already present in t.
func (t *Tuning) LoadBuildingCosts(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read building costs config: %w", err)
	}

	var cfg domain.BuildingCostConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse building costs config: %w", err)
	}

	if len(cfg.Costs) == 0 {
		return fmt.Errorf("building costs config %s has no entries", path)
	}

	for name, cost := range cfg.Costs {
		if cost.Bronze < 0 || cost.Gold < 0 || cost.Diamond < 0 {
			return fmt.Errorf("building %q has negative cost", name)
		}
	}

	t.BuildingCosts = cfg.Costs
	return nil
}

// bossNameConfig is the boss name pool configuration file
type bossNameConfig struct {
	Version string   `json:"version"`
	Names   []string `json:"names"`
}

// LoadBossNames overlays the boss name pool from a JSON config file
func (t *Tuning) LoadBossNames(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read boss names config: %w", err)
	}

	var cfg bossNameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse boss names config: %w", err)
	}

	if len(cfg.Names) == 0 {
		return fmt.Errorf("boss names config %s has no entries", path)
	}

	t.BossNames = cfg.Names
	return nil
}
