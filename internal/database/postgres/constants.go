package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID         = "invalid user id"
	ErrMsgFailedToInsertUser    = "failed to insert user"
	ErrMsgFailedToGetUser       = "failed to get user"
	ErrMsgFailedToGetUserByName = "failed to get user by username"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToInsertStats = "failed to insert character stats"
	ErrMsgFailedToGetStats    = "failed to get character stats"
	ErrMsgFailedToUpdateStats = "failed to update character stats"
	ErrMsgFailedToLockStats   = "failed to lock character stats"
)

// Error Messages - Rule Operations
const (
	ErrMsgFailedToInsertRule = "failed to insert rule"
	ErrMsgFailedToQueryRules = "failed to query rules"
	ErrMsgFailedToDeleteRule = "failed to delete rule"
)

// Error Messages - Boss Operations
const (
	ErrMsgFailedToInsertBoss = "failed to insert boss"
	ErrMsgFailedToGetBoss    = "failed to get boss"
	ErrMsgFailedToUpdateBoss = "failed to update boss"
	ErrMsgFailedToDeleteBoss = "failed to delete bosses"
)

// Error Messages - Quest Operations
const (
	ErrMsgFailedToUpsertDefinition = "failed to upsert quest definition"
	ErrMsgFailedToQueryDefinitions = "failed to query quest definitions"
	ErrMsgFailedToGetDefinition    = "failed to get quest definition"
	ErrMsgFailedToInsertUserQuest  = "failed to insert user quest"
	ErrMsgFailedToQueryUserQuests  = "failed to query user quests"
	ErrMsgFailedToGetUserQuest     = "failed to get user quest"
	ErrMsgFailedToUpdateUserQuest  = "failed to update user quest"
	ErrMsgFailedToResetUserQuests  = "failed to reset user quests"
)

// Error Messages - Building Operations
const (
	ErrMsgFailedToInsertBuilding = "failed to insert building"
	ErrMsgFailedToQueryBuildings = "failed to query buildings"
	ErrMsgFailedToGetBuilding    = "failed to get building"
	ErrMsgFailedToUpdateBuilding = "failed to update building"
)

// Error Messages - Usage Log Operations
const (
	ErrMsgFailedToInsertLogs = "failed to insert usage logs"
	ErrMsgFailedToQueryLogs  = "failed to query usage logs"
)
