package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/usage"
)

// UsageLogRequest is one observed app session in a sync request
type UsageLogRequest struct {
	AppPackageName  string    `json:"app_package_name" validate:"required,app_package"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds" validate:"gte=0"`
}

// SyncRequest represents the batch of usage logs for one sync
type SyncRequest struct {
	Logs []UsageLogRequest `json:"logs" validate:"dive"`
}

// HandleSyncUsage ingests usage logs and runs one progression sync
// @Summary Sync usage data
// @Description Resolves daily boss combat, grants XP, applies level-ups, and advances quests
// @Tags sync
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SyncRequest true "Usage logs"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/sync [post]
func HandleSyncUsage(usageService usage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode sync request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		logs := make([]domain.UsageLogEntry, len(req.Logs))
		for i, l := range req.Logs {
			logs[i] = domain.UsageLogEntry{
				AppPackageName:  l.AppPackageName,
				StartTime:       l.StartTime,
				EndTime:         l.EndTime,
				DurationSeconds: l.DurationSeconds,
			}
		}

		result, err := usageService.SyncUsage(r.Context(), userID, logs)
		if err != nil {
			log.Error(ErrMsgSyncFailed, "error", err, "user_id", userID, "log_count", len(logs))
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}
