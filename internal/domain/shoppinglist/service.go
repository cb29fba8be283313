package shoppinglist

import (
	"context"

	"github.com/umamihq/umami-backend/internal/domain/recipe"
)

// Service defines shopping list operations
type Service interface {
	// CreateFromIngredients builds a priced list by comparing each
	// ingredient across retailers. Ingredients with no match become
	// unresolved lines rather than failing the whole list.
	CreateFromIngredients(ctx context.Context, userID, name string, ingredients []recipe.Ingredient, location string) (*List, error)

	// CreateEmpty creates a manual list with no items
	CreateEmpty(ctx context.Context, userID, name string) (*List, error)

	Get(ctx context.Context, userID, listID string) (*List, error)
	ListForUser(ctx context.Context, userID string) ([]*List, error)
	Rename(ctx context.Context, userID, listID, name string) (*List, error)
	ToggleItem(ctx context.Context, userID, listID, itemID string, completed bool) (*List, error)
	Delete(ctx context.Context, userID, listID string) error
}
