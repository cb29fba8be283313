package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/umamihq/umami-backend/internal/api/middleware"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/utils"
	"github.com/umamihq/umami-backend/internal/services"
	"github.com/umamihq/umami-backend/internal/worker"
)

const defaultFeedLimit = 20

// RecipeHandler serves the recipe catalog, trending feed and
// personalized recommendations
type RecipeHandler struct {
	recipeRepo recipe.Repository
	recSvc     *services.RecommendationService
	userSvc    user.Service
	trending   *worker.TrendingRefresher
	logger     *logger.Logger
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(
	recipeRepo recipe.Repository,
	recSvc *services.RecommendationService,
	userSvc user.Service,
	trending *worker.TrendingRefresher,
	log *logger.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		recipeRepo: recipeRepo,
		recSvc:     recSvc,
		userSvc:    userSvc,
		trending:   trending,
		logger:     log,
	}
}

// List handles GET /recipes
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := recipe.Filter{
		Query:      q.Get("q"),
		Cuisine:    q.Get("cuisine"),
		Difficulty: recipe.Difficulty(q.Get("difficulty")),
	}
	if dietary := q.Get("dietary"); dietary != "" {
		filter.Dietary = strings.Split(dietary, ",")
	}
	if maxTime, err := strconv.Atoi(q.Get("max_time")); err == nil && maxTime > 0 {
		filter.MaxTime = maxTime
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	recipes, err := h.recipeRepo.List(r.Context(), filter)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, recipes)
}

// GetBySlug handles GET /recipes/{slug}
func (h *RecipeHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	rec, err := h.recipeRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, rec)
}

// Trending handles GET /recipes/trending, served from the worker's
// cached snapshot
func (h *RecipeHandler) Trending(w http.ResponseWriter, r *http.Request) {
	limit := limitFromQuery(r, defaultFeedLimit)

	recipes, err := h.trending.Feed(r.Context(), limit)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, recipes)
}

// Recommendations handles GET /recommendations. Authenticated callers
// get their saved preferences applied; everyone else gets the
// popularity plus recency fallback.
func (h *RecipeHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit := limitFromQuery(r, defaultFeedLimit)

	var prefs *user.Preferences
	if userID, ok := middleware.GetUserID(r); ok {
		p, err := h.userSvc.GetPreferences(r.Context(), userID)
		if err != nil {
			h.logger.WithError(err).Warn("failed to load preferences, using fallback ranking")
		} else {
			prefs = p
		}
	}

	recipes, err := h.recSvc.RecommendForUser(r.Context(), prefs, limit)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, recipes)
}

func limitFromQuery(r *http.Request, fallback int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		return fallback
	}
	return limit
}
