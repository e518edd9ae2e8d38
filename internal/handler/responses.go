package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/IdleHero_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgUsernameTakenError = "Username is already taken"
	ErrMsgStatsNotFoundError = "Character not found"
	ErrMsgRuleNotFoundError  = "Rule not found"
	ErrMsgBossNotFoundError  = "No boss found for today"

	ErrMsgQuestNotFoundError     = "Quest not found"
	ErrMsgQuestNotCompletedError = "Quest is not completed yet"
	ErrMsgQuestClaimedError      = "Quest reward was already claimed"

	ErrMsgInsufficientResourcesErr = "Not enough resources"
	ErrMsgUnknownBuildingTypeErr   = "Unknown building type"
	ErrMsgBuildingNotFoundError    = "Building not found"
	ErrMsgBuildingExistsError      = "Building is already constructed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses without leaking internal detail.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrStatsNotFound):
		return http.StatusNotFound, ErrMsgStatsNotFoundError
	case errors.Is(err, domain.ErrRuleNotFound):
		return http.StatusNotFound, ErrMsgRuleNotFoundError
	case errors.Is(err, domain.ErrBossNotFound):
		return http.StatusNotFound, ErrMsgBossNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrQuestNotCompleted):
		return http.StatusBadRequest, ErrMsgQuestNotCompletedError
	case errors.Is(err, domain.ErrQuestClaimed):
		return http.StatusConflict, ErrMsgQuestClaimedError
	case errors.Is(err, domain.ErrInsufficientResources):
		return http.StatusBadRequest, ErrMsgInsufficientResourcesErr
	case errors.Is(err, domain.ErrUnknownBuildingType):
		return http.StatusBadRequest, ErrMsgUnknownBuildingTypeErr
	case errors.Is(err, domain.ErrBuildingNotFound):
		return http.StatusNotFound, ErrMsgBuildingNotFoundError
	case errors.Is(err, domain.ErrBuildingExists):
		return http.StatusConflict, ErrMsgBuildingExistsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
