package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/kingdom"
	"github.com/osse101/IdleHero_Go/internal/logger"
)

// BuildingRequest names the structure to construct or upgrade
type BuildingRequest struct {
	BuildingType string `json:"building_type" validate:"required,min=1,max=64"`
}

// HandleGetKingdom returns the city view: resources plus buildings
// @Summary Get kingdom
// @Tags kingdom
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/kingdom [get]
func HandleGetKingdom(kingdomService kingdom.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		k, err := kingdomService.GetKingdom(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgGetKingdomFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: k})
	}
}

// HandleConstructBuilding constructs a new structure
// @Summary Construct a building
// @Description Charges the base cost and creates the structure at level 1
// @Tags kingdom
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body BuildingRequest true "Building type"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{userID}/kingdom/buildings [post]
func HandleConstructBuilding(kingdomService kingdom.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req BuildingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode construct request", "error", err)
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

		b, err := kingdomService.Construct(r.Context(), userID, req.BuildingType)
		if err != nil {
			log.Error(ErrMsgConstructFailed, "error", err, "user_id", userID, "building", req.BuildingType)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: "Building constructed", Data: b})
	}
}

// HandleUpgradeBuilding upgrades an existing structure one level
// @Summary Upgrade a building
// @Description Charges the escalating upgrade cost and raises the level by one
// @Tags kingdom
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body BuildingRequest true "Building type"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/kingdom/buildings/upgrade [post]
func HandleUpgradeBuilding(kingdomService kingdom.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req BuildingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode upgrade request", "error", err)
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

		b, err := kingdomService.Upgrade(r.Context(), userID, req.BuildingType)
		if err != nil {
			log.Error(ErrMsgUpgradeFailed, "error", err, "user_id", userID, "building", req.BuildingType)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: "Building upgraded", Data: b})
	}
}
