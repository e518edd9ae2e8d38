package user

// Error message constants
const (
	ErrMsgFailedToRegister   = "failed to register user"
	ErrMsgFailedToGetProfile = "failed to get user profile"
)

// Log message constants
const (
	LogMsgRegisterCalled = "Register called"
	LogMsgUserRegistered = "user registered"
)
