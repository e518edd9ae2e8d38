package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleHero_Go/internal/logger"
	"github.com/osse101/IdleHero_Go/internal/user"
)

// RegisterUserRequest represents the request to register a new user
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// HandleRegisterUser handles user registration
// @Summary Register a new user
// @Description Creates a user with default character stats and starter quests
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Registration payload"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode register request", "error", err)
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

		u, err := userService.Register(r.Context(), req.Username, req.Email)
		if err != nil {
			log.Error(ErrMsgRegisterUserFailed, "error", err, "username", req.Username)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: "User registered", Data: u})
	}
}

// HandleGetProfile returns a user's full profile
// @Summary Get user profile
// @Description Returns the user with stats, rules, quests, and buildings
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [get]
func HandleGetProfile(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := chi.URLParam(r, "userID")
		if userID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		profile, err := userService.GetProfile(r.Context(), userID)
		if err != nil {
			log.Error(ErrMsgGetProfileFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: profile})
	}
}
