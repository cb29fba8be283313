package grocery

import "context"

// Service defines the grocery aggregation operations
type Service interface {
	// SearchAllStores fans a search out to every registered retailer,
	// merges whatever succeeded, dedupes and sorts
	SearchAllStores(ctx context.Context, params SearchParams) (*SearchResult, error)

	// SearchByStore searches a single retailer; fails for an unregistered key
	SearchByStore(ctx context.Context, store string, params SearchParams) (*SearchResult, error)

	// CompareIngredientPrices builds a price comparison for one ingredient.
	// It fails when no retailer returned any item.
	CompareIngredientPrices(ctx context.Context, ingredient, location string) (*PriceComparison, error)

	// GetAvailableStores lists stores serving a location
	GetAvailableStores(ctx context.Context, location string) ([]Store, error)
}
