package client

import "time"

// Store represents a retailer or physical store
type Store struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Logo                  string  `json:"logo,omitempty"`
	Type                  string  `json:"type"`
	DeliveryAvailable     bool    `json:"delivery_available"`
	PickupAvailable       bool    `json:"pickup_available"`
	MinimumOrder          float64 `json:"minimum_order,omitempty"`
	DeliveryFee           float64 `json:"delivery_fee,omitempty"`
	EstimatedDeliveryTime string  `json:"estimated_delivery_time,omitempty"`
}

// GroceryItem is a normalized product record
type GroceryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Size         string  `json:"size"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Availability string  `json:"availability"`
	Store        Store   `json:"store"`
	ImageURL     string  `json:"image_url,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	ReviewCount  int     `json:"review_count,omitempty"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price,omitempty"`
}

// SearchResult is the outcome of an item search
type SearchResult struct {
	Items        []GroceryItem `json:"items"`
	TotalResults int           `json:"total_results"`
	SearchTime   float64       `json:"search_time_ms"`
	Suggestions  []string      `json:"suggestions,omitempty"`
}

// PriceRange holds the minimum and maximum price found
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceComparison summarizes one ingredient across retailers
type PriceComparison struct {
	Ingredient   string        `json:"ingredient"`
	Items        []GroceryItem `json:"items"`
	BestPrice    GroceryItem   `json:"best_price"`
	AveragePrice float64       `json:"average_price"`
	PriceRange   PriceRange    `json:"price_range"`
	Savings      float64       `json:"savings"`
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// Instruction is one step of a recipe
type Instruction struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Duration    int    `json:"duration,omitempty"`
	Tips        string `json:"tips,omitempty"`
}

// Author identifies the recipe author
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Recipe is a recipe record from the catalog
type Recipe struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Ingredients  []Ingredient  `json:"ingredients,omitempty"`
	Instructions []Instruction `json:"instructions,omitempty"`
	PrepTime     int           `json:"prep_time"`
	CookTime     int           `json:"cook_time"`
	Servings     int           `json:"servings,omitempty"`
	Difficulty   string        `json:"difficulty"`
	Cuisine      string        `json:"cuisine"`
	DietaryTags  []string      `json:"dietary_tags,omitempty"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	Author       Author        `json:"author,omitempty"`
	PublishedAt  time.Time     `json:"published_at"`
}

// ShoppingListItem is one line of a shopping list
type ShoppingListItem struct {
	ID           string        `json:"id"`
	Ingredient   string        `json:"ingredient"`
	Amount       float64       `json:"amount"`
	Unit         string        `json:"unit"`
	Notes        string        `json:"notes,omitempty"`
	Completed    bool          `json:"completed"`
	GroceryItem  *GroceryItem  `json:"grocery_item,omitempty"`
	Alternatives []GroceryItem `json:"alternatives,omitempty"`
}

// ShoppingList is a named collection of shopping list items
type ShoppingList struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Name       string             `json:"name"`
	Items      []ShoppingListItem `json:"items"`
	TotalPrice float64            `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// User is an account profile
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Preferences holds recommendation preferences
type Preferences struct {
	UserID              string    `json:"user_id"`
	Cuisines            []string  `json:"cuisines"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
	SkillLevel          string    `json:"skill_level"`
	CookingTime         string    `json:"cooking_time"`
	FavoriteIngredients []string  `json:"favorite_ingredients,omitempty"`
	Allergies           []string  `json:"allergies,omitempty"`
	DislikedIngredients []string  `json:"disliked_ingredients,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
