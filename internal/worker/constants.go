package worker

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStandby   = "Daily reset worker on standby"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
	LogMsgDailyResetStarting  = "Daily reset starting"
	LogMsgDailyResetCompleted = "Daily reset completed"
	LogMsgDailyResetFailed    = "Daily reset failed"
)
