package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/metrics"
	"github.com/umamihq/umami-backend/internal/providers"
)

// GroceryService implements grocery.Service by fanning searches out to
// every registered retailer adapter and merging whatever comes back.
// A single retailer failing never fails the aggregate.
type GroceryService struct {
	registry *providers.Registry
	logger   *logger.Logger
}

// NewGroceryService creates a grocery aggregation service
func NewGroceryService(registry *providers.Registry, log *logger.Logger) *GroceryService {
	return &GroceryService{
		registry: registry,
		logger:   log,
	}
}

// SearchAllStores searches every registered retailer concurrently,
// waits for all of them to settle, then dedupes and sorts the merged
// result
func (s *GroceryService) SearchAllStores(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error) {
	if params.Query == "" {
		return nil, errors.BadRequest("search query must not be empty")
	}

	adapters := s.registry.All()
	results := make([]*grocery.SearchResult, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(i int, adapter providers.RetailerAPI) {
			defer wg.Done()
			res, err := adapter.SearchItems(ctx, params)
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"retailer": adapter.Key(),
					"query":    params.Query,
				}).WithError(err).Warn("retailer search failed, dropping its results")
				return
			}
			results[i] = res
		}(i, adapter)
	}
	wg.Wait()

	var allItems []grocery.Item
	totalResults := 0
	totalSearchTime := 0.0
	for _, res := range results {
		if res == nil {
			continue
		}
		allItems = append(allItems, res.Items...)
		totalResults += res.TotalResults
		totalSearchTime += res.SearchTime
	}

	items := dedupeItems(allItems)
	sortMode := params.Sort
	if sortMode == "" {
		sortMode = grocery.SortByPrice
	}
	sortItems(items, sortMode)

	searchTime := 0.0
	if len(adapters) > 0 {
		searchTime = totalSearchTime / float64(len(adapters))
	}

	return &grocery.SearchResult{
		Items:        items,
		TotalResults: totalResults,
		SearchTime:   searchTime,
		Suggestions:  searchSuggestions(params.Query),
	}, nil
}

// SearchByStore searches a single retailer. An unregistered store key
// is a hard error; it indicates misconfiguration, not retailer downtime.
func (s *GroceryService) SearchByStore(ctx context.Context, store string, params grocery.SearchParams) (*grocery.SearchResult, error) {
	adapter, ok := s.registry.Get(store)
	if !ok {
		return nil, errors.UnsupportedStore(store)
	}
	return adapter.SearchItems(ctx, params)
}

// CompareIngredientPrices searches all retailers for one ingredient and
// summarizes best price, average, range and potential savings. An empty
// merged result is an error: a comparison cannot exist without items.
func (s *GroceryService) CompareIngredientPrices(ctx context.Context, ingredient, location string) (*grocery.PriceComparison, error) {
	result, err := s.SearchAllStores(ctx, grocery.SearchParams{
		Query:    ingredient,
		Location: location,
		Sort:     grocery.SortByPrice,
	})
	if err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		metrics.RecordPriceComparison("no_items")
		return nil, errors.NoItemsFound(ingredient)
	}

	minPrice := result.Items[0].Price
	maxPrice := result.Items[0].Price
	sum := 0.0
	for _, item := range result.Items {
		if item.Price < minPrice {
			minPrice = item.Price
		}
		if item.Price > maxPrice {
			maxPrice = item.Price
		}
		sum += item.Price
	}

	// Items are price-sorted, so the head is the cheapest
	best := result.Items[0]

	metrics.RecordPriceComparison("ok")
	return &grocery.PriceComparison{
		Ingredient:   ingredient,
		Items:        result.Items,
		BestPrice:    best,
		AveragePrice: sum / float64(len(result.Items)),
		PriceRange:   grocery.PriceRange{Min: minPrice, Max: maxPrice},
		Savings:      maxPrice - minPrice,
	}, nil
}

// GetAvailableStores lists stores serving a location across all
// retailers. Individual retailer failures are tolerated.
func (s *GroceryService) GetAvailableStores(ctx context.Context, location string) ([]grocery.Store, error) {
	var out []grocery.Store
	seen := make(map[string]bool)

	for _, adapter := range s.registry.All() {
		stores, err := adapter.GetStores(ctx, location)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"retailer": adapter.Key(),
			}).WithError(err).Warn("failed to fetch stores")
			continue
		}
		for _, store := range stores {
			if seen[store.ID] {
				continue
			}
			seen[store.ID] = true
			out = append(out, store)
		}
	}

	return out, nil
}

// dedupeItems removes duplicates keyed by (name, brand, size), case
// insensitive on name and brand. The cheaper item wins a collision;
// surviving items keep first-seen order.
func dedupeItems(items []grocery.Item) []grocery.Item {
	out := make([]grocery.Item, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		key := strings.ToLower(item.Name) + "_" + strings.ToLower(item.Brand) + "_" + item.Size
		if i, seen := index[key]; seen {
			if item.Price < out[i].Price {
				out[i] = item
			}
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}

	return out
}

// sortItems orders items in place; all modes are stable so equal keys
// keep their merged order
func sortItems(items []grocery.Item, mode grocery.SortMode) {
	switch mode {
	case grocery.SortByPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case grocery.SortByRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case grocery.SortByAvailability:
		sort.SliceStable(items, func(i, j int) bool {
			return grocery.AvailabilityRank(items[i].Availability) < grocery.AvailabilityRank(items[j].Availability)
		})
	}
}

// searchSuggestions proposes refined queries for the search box
func searchSuggestions(query string) []string {
	suggestions := []string{
		"organic " + query,
		"fresh " + query,
		query + " substitute",
	}
	return suggestions
}
