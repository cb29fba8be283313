package grocery

// Availability describes whether an item can currently be bought
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out_of_stock"
)

// AvailabilityRank orders availability states for sorting:
// in stock before limited before out of stock
func AvailabilityRank(a Availability) int {
	switch a {
	case AvailabilityInStock:
		return 0
	case AvailabilityLimited:
		return 1
	case AvailabilityOutOfStock:
		return 2
	default:
		return 3
	}
}

// StoreType categorizes a retailer
type StoreType string

const (
	StoreTypeGrocery     StoreType = "grocery"
	StoreTypeWarehouse   StoreType = "warehouse"
	StoreTypeOrganic     StoreType = "organic"
	StoreTypeConvenience StoreType = "convenience"
)

// SortMode selects the ordering of aggregated search results
type SortMode string

const (
	SortByPrice        SortMode = "price"
	SortByRating       SortMode = "rating"
	SortByAvailability SortMode = "availability"
)

// Store represents a retailer or physical store
type Store struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Logo                  string    `json:"logo,omitempty"`
	Type                  StoreType `json:"type"`
	DeliveryAvailable     bool      `json:"delivery_available"`
	PickupAvailable       bool      `json:"pickup_available"`
	MinimumOrder          float64   `json:"minimum_order,omitempty"`
	DeliveryFee           float64   `json:"delivery_fee,omitempty"`
	EstimatedDeliveryTime string    `json:"estimated_delivery_time,omitempty"`
}

// Item is a normalized product record from any retailer
type Item struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand,omitempty"`
	Size         string       `json:"size"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	Availability Availability `json:"availability"`
	Store        Store        `json:"store"`
	ImageURL     string       `json:"image_url,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	ReviewCount  int          `json:"review_count,omitempty"`
	Unit         string       `json:"unit"`
	UnitPrice    float64      `json:"unit_price,omitempty"`
}

// SearchParams describes a generic ingredient search
type SearchParams struct {
	Query    string
	Location string
	MaxPrice float64
	Stores   []string
	Organic  bool
	Sort     SortMode
}

// SearchResult is the outcome of an item search at one or more retailers
type SearchResult struct {
	Items        []Item   `json:"items"`
	TotalResults int      `json:"total_results"`
	SearchTime   float64  `json:"search_time_ms"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// PriceRange holds the minimum and maximum price found for an ingredient
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceComparison summarizes one ingredient across all retailers.
// BestPrice.Price always equals PriceRange.Min and Savings equals
// PriceRange.Max - PriceRange.Min.
type PriceComparison struct {
	Ingredient   string     `json:"ingredient"`
	Items        []Item     `json:"items"`
	BestPrice    Item       `json:"best_price"`
	AveragePrice float64    `json:"average_price"`
	PriceRange   PriceRange `json:"price_range"`
	Savings      float64    `json:"savings"`
}
