package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/shoppinglist"
	"github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/pkg/metrics"
)

const defaultListName = "Recipe Shopping List"

// maxAlternatives caps how many runner-up items are kept per line
const maxAlternatives = 3

// ShoppingListService implements shoppinglist.Service on top of the
// grocery aggregator and a persistence backend
type ShoppingListService struct {
	grocerySvc grocery.Service
	repo       shoppinglist.Repository
	logger     *logger.Logger
}

// NewShoppingListService creates a shopping list service
func NewShoppingListService(grocerySvc grocery.Service, repo shoppinglist.Repository, log *logger.Logger) *ShoppingListService {
	return &ShoppingListService{
		grocerySvc: grocerySvc,
		repo:       repo,
		logger:     log,
	}
}

// CreateFromIngredients implements shoppinglist.Service. Ingredients
// are compared one at a time; a comparison failure downgrades that
// line to unresolved instead of failing the list.
func (s *ShoppingListService) CreateFromIngredients(ctx context.Context, userID, name string, ingredients []recipe.Ingredient, location string) (*shoppinglist.List, error) {
	if len(ingredients) == 0 {
		return nil, errors.BadRequest("ingredient list must not be empty")
	}
	if name == "" {
		name = defaultListName
	}

	items := make([]shoppinglist.Item, 0, len(ingredients))
	for _, ing := range ingredients {
		item := shoppinglist.Item{
			ID:         ing.ID,
			Ingredient: ing.Name,
			Amount:     ing.Amount,
			Unit:       ing.Unit,
			Notes:      ing.Notes,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		comparison, err := s.grocerySvc.CompareIngredientPrices(ctx, ing.Name, location)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"ingredient": ing.Name,
				"user_id":    userID,
			}).WithError(err).Warn("price comparison failed, adding unresolved line")
			metrics.RecordShoppingListItem(false)
			items = append(items, item)
			continue
		}

		best := comparison.BestPrice
		item.GroceryItem = &best
		item.Alternatives = alternativesFor(comparison)
		metrics.RecordShoppingListItem(true)
		items = append(items, item)
	}

	now := time.Now().UTC()
	list := &shoppinglist.List{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	list.RecalculateTotal()

	if err := s.repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateEmpty implements shoppinglist.Service
func (s *ShoppingListService) CreateEmpty(ctx context.Context, userID, name string) (*shoppinglist.List, error) {
	if name == "" {
		return nil, errors.BadRequest("list name must not be empty")
	}

	now := time.Now().UTC()
	list := &shoppinglist.List{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Items:     []shoppinglist.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get implements shoppinglist.Service
func (s *ShoppingListService) Get(ctx context.Context, userID, listID string) (*shoppinglist.List, error) {
	return s.getOwned(ctx, userID, listID)
}

// ListForUser implements shoppinglist.Service
func (s *ShoppingListService) ListForUser(ctx context.Context, userID string) ([]*shoppinglist.List, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Rename implements shoppinglist.Service
func (s *ShoppingListService) Rename(ctx context.Context, userID, listID, name string) (*shoppinglist.List, error) {
	if name == "" {
		return nil, errors.BadRequest("list name must not be empty")
	}

	list, err := s.getOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	list.Name = name
	list.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ToggleItem implements shoppinglist.Service
func (s *ShoppingListService) ToggleItem(ctx context.Context, userID, listID, itemID string, completed bool) (*shoppinglist.List, error) {
	list, err := s.getOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFound("shopping list item")
	}

	list.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete implements shoppinglist.Service
func (s *ShoppingListService) Delete(ctx context.Context, userID, listID string) error {
	if _, err := s.getOwned(ctx, userID, listID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, listID)
}

// getOwned loads a list and verifies ownership. A list owned by someone
// else reads as not found so list IDs are not probeable.
func (s *ShoppingListService) getOwned(ctx context.Context, userID, listID string) (*shoppinglist.List, error) {
	list, err := s.repo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.UserID != userID {
		return nil, errors.NotFound("shopping list")
	}
	return list, nil
}

// alternativesFor picks the runner-up items after the best price
func alternativesFor(c *grocery.PriceComparison) []grocery.Item {
	if len(c.Items) <= 1 {
		return nil
	}
	end := 1 + maxAlternatives
	if end > len(c.Items) {
		end = len(c.Items)
	}
	out := make([]grocery.Item, end-1)
	copy(out, c.Items[1:end])
	return out
}
