package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"
	ErrMsgStatsNotFound = "character stats not found"

	// Boss errors
	ErrMsgBossNotFound = "no boss active today"

	// Rule errors
	ErrMsgRuleNotFound = "rule not found"

	// Quest errors
	ErrMsgQuestNotFound     = "quest not found"
	ErrMsgQuestNotCompleted = "quest is not completed"
	ErrMsgQuestClaimed      = "quest reward already claimed"

	// Kingdom errors
	ErrMsgInsufficientResources = "insufficient resources"
	ErrMsgUnknownBuildingType   = "unknown building type"
	ErrMsgBuildingNotFound      = "building not found"
	ErrMsgBuildingExists        = "building already constructed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)
	ErrStatsNotFound = errors.New(ErrMsgStatsNotFound)

	// Boss errors
	ErrBossNotFound = errors.New(ErrMsgBossNotFound)

	// Rule errors
	ErrRuleNotFound = errors.New(ErrMsgRuleNotFound)

	// Quest errors
	ErrQuestNotFound     = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotCompleted = errors.New(ErrMsgQuestNotCompleted)
	ErrQuestClaimed      = errors.New(ErrMsgQuestClaimed)

	// Kingdom errors
	ErrInsufficientResources = errors.New(ErrMsgInsufficientResources)
	ErrUnknownBuildingType   = errors.New(ErrMsgUnknownBuildingType)
	ErrBuildingNotFound      = errors.New(ErrMsgBuildingNotFound)
	ErrBuildingExists        = errors.New(ErrMsgBuildingExists)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
