package client

import (
	"context"
	"net/http"
	"net/url"
)

// ShoppingListService accesses the shopping list endpoints
type ShoppingListService struct {
	client *Client
}

// IngredientInput is one ingredient line in a list creation request
type IngredientInput struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// List fetches the caller's shopping lists
func (s *ShoppingListService) List(ctx context.Context) ([]ShoppingList, error) {
	var lists []ShoppingList
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/shopping-lists", nil, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// Get fetches one shopping list
func (s *ShoppingListService) Get(ctx context.Context, id string) (*ShoppingList, error) {
	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/shopping-lists/"+url.PathEscape(id), nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create creates an empty manual list
func (s *ShoppingListService) Create(ctx context.Context, name string) (*ShoppingList, error) {
	body := map[string]string{"name": name}

	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/shopping-lists", nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateFromIngredients builds a priced list from raw ingredients
func (s *ShoppingListService) CreateFromIngredients(ctx context.Context, name string, ingredients []IngredientInput, location string) (*ShoppingList, error) {
	body := map[string]interface{}{
		"name":        name,
		"ingredients": ingredients,
		"location":    location,
	}

	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/shopping-lists/from-ingredients", nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateFromRecipe builds a priced list from a recipe slug
func (s *ShoppingListService) CreateFromRecipe(ctx context.Context, slug string, servings int, location string) (*ShoppingList, error) {
	body := map[string]interface{}{
		"slug":     slug,
		"servings": servings,
		"location": location,
	}

	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/shopping-lists/from-recipe", nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Rename renames a shopping list
func (s *ShoppingListService) Rename(ctx context.Context, id, name string) (*ShoppingList, error) {
	body := map[string]string{"name": name}

	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodPut, "/api/v1/shopping-lists/"+url.PathEscape(id), nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ToggleItem marks a list item completed or not
func (s *ShoppingListService) ToggleItem(ctx context.Context, listID, itemID string, completed bool) (*ShoppingList, error) {
	body := map[string]bool{"completed": completed}
	path := "/api/v1/shopping-lists/" + url.PathEscape(listID) + "/items/" + url.PathEscape(itemID)

	var list ShoppingList
	if err := s.client.doRequest(ctx, http.MethodPatch, path, nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes a shopping list
func (s *ShoppingListService) Delete(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, http.MethodDelete, "/api/v1/shopping-lists/"+url.PathEscape(id), nil, nil, nil)
}
