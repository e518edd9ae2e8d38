package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/quest"
)

// HandleGetQuestDefinitions returns the quest catalog
// @Summary List quest definitions
// @Tags quests
// @Produce json
// @Success 200 {object} DataResponse
// @Router /quests [get]
func HandleGetQuestDefinitions(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		defs, err := questService.GetDefinitions(r.Context())
		if err != nil {
			log.Error(ErrMsgGetQuestsFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: defs})
	}
}

// HandleGetUserQuests returns a user's quest instances
// @Summary List user quests
// @Tags quests
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Router /users/{userID}/quests [get]
func HandleGetUserQuests(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		quests, err := questService.GetUserQuests(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgGetQuestsFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if quests == nil {
			quests = []domain.UserQuest{}
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: quests})
	}
}

// HandleClaimQuestReward claims a completed quest's reward
// @Summary Claim quest reward
// @Description Pays out a COMPLETED quest exactly once
// @Tags quests
// @Produce json
// @Param userID path string true "User ID"
// @Param questID path string true "User quest instance ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{userID}/quests/{questID}/claim [post]
func HandleClaimQuestReward(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")
		questID := chi.URLParam(r, "questID")

		result, err := questService.ClaimQuestReward(r.Context(), userID, questID)
		if err != nil {
			log.Error(ErrMsgClaimQuestFailed, "error", err, "user_id", userID, "quest_id", questID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: "Reward claimed", Data: result})
	}
}
