package usage

// Error message constants
const (
	ErrMsgFailedToSync    = "failed to sync usage"
	ErrMsgFailedToGetBoss = "failed to get today's boss"
)
