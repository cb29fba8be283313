package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/umamihq/umami-backend/internal/api/dto"
	"github.com/umamihq/umami-backend/internal/api/middleware"
	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/utils"
	"github.com/umamihq/umami-backend/internal/pkg/validator"
)

// UserHandler serves profile and preference endpoints
type UserHandler struct {
	service user.Service
	logger  *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service user.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, logger: log}
}

// Me handles GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, profile)
}

// GetPreferences handles GET /users/me/preferences. A user with no
// saved preferences gets an empty data field.
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	prefs, err := h.service.GetPreferences(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /users/me/preferences
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if fieldErrs := validator.Struct(req); fieldErrs != nil {
		utils.WriteError(w, errors.ValidationError("validation failed", fieldErrs))
		return
	}

	prefs := &user.Preferences{
		UserID:              userID,
		Cuisines:            req.Cuisines,
		DietaryRestrictions: req.DietaryRestrictions,
		SkillLevel:          user.SkillLevel(req.SkillLevel),
		CookingTime:         user.CookingTime(req.CookingTime),
		FavoriteIngredients: req.FavoriteIngredients,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
	}

	if err := h.service.UpdatePreferences(r.Context(), prefs); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, prefs)
}
