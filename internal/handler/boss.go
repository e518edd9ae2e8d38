package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/usage"
)

// HandleGetTodaysBoss returns the user's boss for the current UTC day
// @Summary Get today's boss
// @Description Returns the daily boss, generating one on first access
// @Tags boss
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/boss [get]
func HandleGetTodaysBoss(usageService usage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		boss, err := usageService.GetTodaysBoss(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgGetBossFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: boss})
	}
}
