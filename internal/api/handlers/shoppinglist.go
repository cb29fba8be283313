package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/umamihq/umami-backend/internal/api/dto"
	"github.com/umamihq/umami-backend/internal/api/middleware"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/shoppinglist"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/utils"
	"github.com/umamihq/umami-backend/internal/pkg/validator"
)

// ShoppingListHandler serves shopping list CRUD and composition
type ShoppingListHandler struct {
	service    shoppinglist.Service
	recipeRepo recipe.Repository
	logger     *logger.Logger
}

// NewShoppingListHandler creates a new shopping list handler
func NewShoppingListHandler(service shoppinglist.Service, recipeRepo recipe.Repository, log *logger.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		service:    service,
		recipeRepo: recipeRepo,
		logger:     log,
	}
}

// Create handles POST /shopping-lists
func (h *ShoppingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if fieldErrs := validator.Struct(req); fieldErrs != nil {
		utils.WriteError(w, errors.ValidationError("validation failed", fieldErrs))
		return
	}

	list, err := h.service.CreateEmpty(r.Context(), userID, req.Name)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, list)
}

// CreateFromIngredients handles POST /shopping-lists/from-ingredients
func (h *ShoppingListHandler) CreateFromIngredients(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.CreateFromIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if fieldErrs := validator.Struct(req); fieldErrs != nil {
		utils.WriteError(w, errors.ValidationError("validation failed", fieldErrs))
		return
	}

	ingredients := make([]recipe.Ingredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
			Optional: ing.Optional,
		}
	}

	list, err := h.service.CreateFromIngredients(r.Context(), userID, req.Name, ingredients, req.Location)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, list)
}

// CreateFromRecipe handles POST /shopping-lists/from-recipe. The recipe
// is fetched from the CMS, optionally scaled to the requested servings.
func (h *ShoppingListHandler) CreateFromRecipe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.CreateFromRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if req.RecipeID == "" && req.Slug == "" {
		utils.WriteError(w, errors.BadRequest("either recipe_id or slug is required"))
		return
	}

	var rec *recipe.Recipe
	var err error
	if req.RecipeID != "" {
		rec, err = h.recipeRepo.GetByID(r.Context(), req.RecipeID)
	} else {
		rec, err = h.recipeRepo.GetBySlug(r.Context(), req.Slug)
	}
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	name := req.Name
	if name == "" {
		name = rec.Title
	}

	list, err := h.service.CreateFromIngredients(r.Context(), userID, name, rec.ScaledIngredients(req.Servings), req.Location)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, list)
}

// List handles GET /shopping-lists
func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	lists, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, lists)
}

// Get handles GET /shopping-lists/{id}
func (h *ShoppingListHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	list, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, list)
}

// Rename handles PUT /shopping-lists/{id}
func (h *ShoppingListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.RenameListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if fieldErrs := validator.Struct(req); fieldErrs != nil {
		utils.WriteError(w, errors.ValidationError("validation failed", fieldErrs))
		return
	}

	list, err := h.service.Rename(r.Context(), userID, chi.URLParam(r, "id"), req.Name)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, list)
}

// ToggleItem handles PATCH /shopping-lists/{id}/items/{itemID}
func (h *ShoppingListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.ToggleItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("invalid request body"))
		return
	}
	if req.Completed == nil {
		utils.WriteError(w, errors.BadRequest("completed is required"))
		return
	}

	list, err := h.service.ToggleItem(r.Context(), userID,
		chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), *req.Completed)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, list)
}

// Delete handles DELETE /shopping-lists/{id}
func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "shopping list deleted", nil)
}
