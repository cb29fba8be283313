package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/utils"
)

// GroceryHandler serves price search and comparison endpoints
type GroceryHandler struct {
	service grocery.Service
	logger  *logger.Logger
}

// NewGroceryHandler creates a new grocery handler
func NewGroceryHandler(service grocery.Service, log *logger.Logger) *GroceryHandler {
	return &GroceryHandler{service: service, logger: log}
}

// Search handles GET /grocery/search. The optional store query
// parameter narrows the search to a single retailer.
func (h *GroceryHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := searchParamsFromQuery(r)
	if params.Query == "" {
		utils.WriteError(w, errors.BadRequest("query parameter q is required"))
		return
	}

	var result *grocery.SearchResult
	var err error

	if store := r.URL.Query().Get("store"); store != "" {
		result, err = h.service.SearchByStore(r.Context(), store, params)
	} else {
		result, err = h.service.SearchAllStores(r.Context(), params)
	}
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, result)
}

// Compare handles GET /grocery/compare
func (h *GroceryHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ingredient := r.URL.Query().Get("ingredient")
	if ingredient == "" {
		utils.WriteError(w, errors.BadRequest("query parameter ingredient is required"))
		return
	}

	comparison, err := h.service.CompareIngredientPrices(r.Context(), ingredient, r.URL.Query().Get("location"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, comparison)
}

// Stores handles GET /grocery/stores
func (h *GroceryHandler) Stores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.GetAvailableStores(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stores)
}

func searchParamsFromQuery(r *http.Request) grocery.SearchParams {
	q := r.URL.Query()

	params := grocery.SearchParams{
		Query:    q.Get("q"),
		Location: q.Get("location"),
		Sort:     grocery.SortMode(q.Get("sort")),
	}
	if maxPrice, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil && maxPrice > 0 {
		params.MaxPrice = maxPrice
	}
	if stores := q.Get("stores"); stores != "" {
		params.Stores = strings.Split(stores, ",")
	}
	if organic, err := strconv.ParseBool(q.Get("organic")); err == nil {
		params.Organic = organic
	}
	return params
}
