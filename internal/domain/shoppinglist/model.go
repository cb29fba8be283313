package shoppinglist

import (
	"time"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
)

// Item is one line of a shopping list. GroceryItem is nil when no
// retailer returned a match for the ingredient; such lines contribute
// zero to the list total.
type Item struct {
	ID           string         `json:"id"`
	Ingredient   string         `json:"ingredient"`
	Amount       float64        `json:"amount"`
	Unit         string         `json:"unit"`
	Notes        string         `json:"notes,omitempty"`
	Completed    bool           `json:"completed"`
	GroceryItem  *grocery.Item  `json:"grocery_item,omitempty"`
	Alternatives []grocery.Item `json:"alternatives,omitempty"`
}

// Price returns the resolved price of the line, zero when unresolved
func (i *Item) Price() float64 {
	if i.GroceryItem == nil {
		return 0
	}
	return i.GroceryItem.Price
}

// List is a named collection of shopping list items
type List struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Items      []Item    `json:"items"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecalculateTotal recomputes TotalPrice as the sum of resolved item prices
func (l *List) RecalculateTotal() {
	total := 0.0
	for i := range l.Items {
		total += l.Items[i].Price()
	}
	l.TotalPrice = total
}
