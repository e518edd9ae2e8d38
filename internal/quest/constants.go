package quest

// Error message constants
const (
	ErrMsgFailedToLoadPool  = "failed to load quest pool"
	ErrMsgFailedToSeed      = "failed to seed quest definitions"
	ErrMsgFailedToClaim     = "failed to claim quest reward"
	ErrMsgFailedToReset     = "failed to reset daily quests"
	ErrMsgMissingDefinition = "user quest has no definition loaded"
)

// Log message constants
const (
	LogMsgDefinitionsSeeded = "quest definitions seeded"
	LogMsgQuestClaimed      = "quest reward claimed"
	LogMsgDailyQuestsReset  = "daily quests reset"
)
