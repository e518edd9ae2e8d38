package game

import (
	"fmt"
	"math"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// UpgradeCost returns the resource cost for building a structure of the
// given type at currentLevel. Level 0 is a fresh construction at base cost;
// each level scales every resource by the upgrade factor, rounded down.
func (e *Engine) UpgradeCost(buildingType string, currentLevel int) (domain.ResourceCost, error) {
	base, ok := e.tuning.BuildingCosts[buildingType]
	if !ok {
		return domain.ResourceCost{}, fmt.Errorf("%w: %s", domain.ErrUnknownBuildingType, buildingType)
	}
	if currentLevel < 0 {
		currentLevel = 0
	}

	mult := math.Pow(e.tuning.UpgradeCostFactor, float64(currentLevel))
	return domain.ResourceCost{
		Bronze:  int(float64(base.Bronze) * mult),
		Gold:    int(float64(base.Gold) * mult),
		Diamond: int(float64(base.Diamond) * mult),
	}, nil
}

// ApplyBuildingTransaction validates and deducts the cost of constructing or
// upgrading a structure. All-or-nothing: if any balance is short, no
// resource is touched and ErrInsufficientResources is returned with the
// shortfall spelled out.
func (e *Engine) ApplyBuildingTransaction(stats *domain.CharacterStats, buildingType string, currentLevel int) (domain.ResourceCost, error) {
	cost, err := e.UpgradeCost(buildingType, currentLevel)
	if err != nil {
		return domain.ResourceCost{}, err
	}

	if stats.Bronze < cost.Bronze || stats.Gold < cost.Gold || stats.Diamond < cost.Diamond {
		return domain.ResourceCost{}, fmt.Errorf("%w: need %d bronze, %d gold, %d diamond",
			domain.ErrInsufficientResources, cost.Bronze, cost.Gold, cost.Diamond)
	}

	stats.Bronze -= cost.Bronze
	stats.Gold -= cost.Gold
	stats.Diamond -= cost.Diamond
	return cost, nil
}
