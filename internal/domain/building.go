package domain

import "time"

// Building is a constructed structure in a user's city. Level drives the
// escalating upgrade cost schedule.
type Building struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	BuildingType string    `json:"building_type"`
	Level        int       `json:"level"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

// ResourceCost is a price expressed in the three city resources
type ResourceCost struct {
	Bronze  int `json:"bronze"`
	Gold    int `json:"gold"`
	Diamond int `json:"diamond"`
}

// Kingdom is the aggregated city view: the resource ledger plus all
// constructed buildings.
type Kingdom struct {
	Bronze    int        `json:"bronze"`
	Gold      int        `json:"gold"`
	Diamond   int        `json:"diamond"`
	Buildings []Building `json:"buildings"`
}

// BuildingCostConfig is the building cost table configuration file
type BuildingCostConfig struct {
	Version string                  `json:"version"`
	Costs   map[string]ResourceCost `json:"costs"`
}
