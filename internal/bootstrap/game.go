package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/osse101/IdleHero_Go/internal/config"
	"github.com/osse101/IdleHero_Go/internal/game"
	"github.com/osse101/IdleHero_Go/internal/quest"
	"github.com/osse101/IdleHero_Go/internal/validation"
)

// ValidateGameConfigs checks every game config file against its JSON schema
// before anything parses it, so a malformed config fails startup with a
// pointed error instead of a half-applied tuning.
func ValidateGameConfigs() error {
	v := validation.NewSchemaValidator()

	checks := []struct{ data, schema string }{
		{config.ConfigPathBuildingCosts, config.SchemaPathBuildingCosts},
		{config.ConfigPathBossNames, config.SchemaPathBossNames},
		{config.ConfigPathQuestDefinitions, config.SchemaPathQuestDefinitions},
	}
	for _, c := range checks {
		if err := v.ValidateFile(c.data, c.schema); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgInvalidGameConfig, err)
		}
	}

	return nil
}

// InitializeEngine builds the game engine from the default tuning overlaid
// with the JSON config files (building costs, boss name pool). Missing config
// files are an error: the economy must not silently run on baked-in numbers
// when an operator expected their overrides to apply.
func InitializeEngine() (*game.Engine, error) {
	slog.Info(LogMsgLoadingGameTuning)

	tuning := game.DefaultTuning()
	if err := tuning.LoadBuildingCosts(config.ConfigPathBuildingCosts); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadBuildingCosts, err)
	}
	if err := tuning.LoadBossNames(config.ConfigPathBossNames); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadBossNames, err)
	}

	slog.Info(LogMsgGameTuningLoaded,
		"building_types", len(tuning.BuildingCosts),
		"boss_names", len(tuning.BossNames))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return game.NewEngine(tuning, rng), nil
}

// SeedQuestDefinitions upserts the quest catalog from JSON config into the
// database so new quest templates ship with a deploy, not a migration.
func SeedQuestDefinitions(ctx context.Context, questService quest.Service) error {
	slog.Info(LogMsgSeedingQuests)

	if err := questService.SeedDefinitions(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedQuests, err)
	}

	slog.Info(LogMsgQuestsSeedComplete)
	return nil
}
