package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details; handlers and
// tests both reference these constants.
const (
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInvalidRequest   = "Invalid request body"

	ErrMsgMissingPathParam = "Missing %s path parameter"

	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetProfileFailed   = "Failed to get profile"

	ErrMsgCreateRuleFailed = "Failed to create rule"
	ErrMsgListRulesFailed  = "Failed to list rules"
	ErrMsgDeleteRuleFailed = "Failed to delete rule"

	ErrMsgSyncFailed    = "Failed to sync usage data"
	ErrMsgGetBossFailed = "Failed to get today's boss"

	ErrMsgGetQuestsFailed   = "Failed to get quests"
	ErrMsgClaimQuestFailed  = "Failed to claim quest reward"
	ErrMsgGetKingdomFailed  = "Failed to get kingdom"
	ErrMsgConstructFailed   = "Failed to construct building"
	ErrMsgUpgradeFailed     = "Failed to upgrade building"
)
