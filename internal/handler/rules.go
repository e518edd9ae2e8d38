package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/domain"
	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/rules"
)

// CreateRuleRequest represents the request to create a detox rule
type CreateRuleRequest struct {
	AppPackageName    string `json:"app_package_name" validate:"required,app_package"`
	DailyLimitMinutes *int   `json:"daily_limit_minutes" validate:"omitempty,gte=0"`
	IsBlocked         bool   `json:"is_blocked"`
	ActiveDays        string `json:"active_days"`
}

// HandleCreateRule creates a detox rule for a user
// @Summary Create a detox rule
// @Description Adds a per-app usage rule; empty active_days means every day
// @Tags rules
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body CreateRuleRequest true "Rule payload"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/rules [post]
func HandleCreateRule(ruleService rules.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req CreateRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode create rule request", "error", err)
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

		rule := &domain.DetoxRule{
			UserID:            userID,
			AppPackageName:    req.AppPackageName,
			DailyLimitMinutes: req.DailyLimitMinutes,
			IsBlocked:         req.IsBlocked,
			ActiveDays:        req.ActiveDays,
		}

		created, err := ruleService.CreateRule(r.Context(), rule)
		if err != nil {
			log.Error(ErrMsgCreateRuleFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: "Rule created", Data: created})
	}
}

// HandleListRules lists a user's detox rules
// @Summary List detox rules
// @Tags rules
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/rules [get]
func HandleListRules(ruleService rules.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		list, err := ruleService.ListRules(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgListRulesFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if list == nil {
			list = []domain.DetoxRule{}
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: list})
	}
}

// HandleDeleteRule deletes a user's detox rule
// @Summary Delete a detox rule
// @Tags rules
// @Produce json
// @Param userID path string true "User ID"
// @Param ruleID path string true "Rule ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/rules/{ruleID} [delete]
func HandleDeleteRule(ruleService rules.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")
		ruleID := chi.URLParam(r, "ruleID")

		if err := ruleService.DeleteRule(r.Context(), userID, ruleID); err != nil {
			log.Error(ErrMsgDeleteRuleFailed, "error", err, "user_id", userID, "rule_id", ruleID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Rule deleted"})
	}
}
