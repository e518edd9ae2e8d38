package config

const (
	// Configuration file paths
	ConfigPathQuestDefinitions = "configs/quests/definitions.json"
	ConfigPathBuildingCosts    = "configs/economy/building_costs.json"
	ConfigPathBossNames        = "configs/game/boss_names.json"

	// JSON schemas the config files are validated against at startup
	SchemaPathQuestDefinitions = "configs/schemas/quest_definitions.schema.json"
	SchemaPathBuildingCosts    = "configs/schemas/building_costs.schema.json"
	SchemaPathBossNames        = "configs/schemas/boss_names.schema.json"
)
