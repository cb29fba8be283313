package testutil

import (
	"context"
	"fmt"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/domain/shoppinglist"
	"github.com/umamihq/umami-backend/internal/domain/user"
)

// MockRetailerAPI is a scripted retailer adapter for aggregation tests
type MockRetailerAPI struct {
	KeyName     string
	StoreName   string
	Items       []grocery.Item
	Stores      []grocery.Store
	SearchErr   error
	StoresErr   error
	SearchCalls int
}

func (m *MockRetailerAPI) Key() string  { return m.KeyName }
func (m *MockRetailerAPI) Name() string { return m.StoreName }

func (m *MockRetailerAPI) SearchItems(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error) {
	m.SearchCalls++
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	items := make([]grocery.Item, len(m.Items))
	copy(items, m.Items)
	return &grocery.SearchResult{
		Items:        items,
		TotalResults: len(items),
		SearchTime:   10,
	}, nil
}

func (m *MockRetailerAPI) GetStores(ctx context.Context, location string) ([]grocery.Store, error) {
	if m.StoresErr != nil {
		return nil, m.StoresErr
	}
	return m.Stores, nil
}

// MockRecipeRepository is a mock implementation of recipe.Repository
type MockRecipeRepository struct {
	Recipes []recipe.Recipe
	Err     error
}

func (m *MockRecipeRepository) GetBySlug(ctx context.Context, slug string) (*recipe.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Recipes {
		if m.Recipes[i].Slug == slug {
			return &m.Recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe not found")
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Recipes {
		if m.Recipes[i].ID == id {
			return &m.Recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe not found")
}

func (m *MockRecipeRepository) List(ctx context.Context, filter recipe.Filter) ([]recipe.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]recipe.Recipe, len(m.Recipes))
	copy(out, m.Recipes)
	return out, nil
}

// MockShoppingListRepository is an in-memory shoppinglist.Repository
type MockShoppingListRepository struct {
	Lists       map[string]*shoppinglist.List
	CreateError error
	UpdateError error
}

func NewMockShoppingListRepository() *MockShoppingListRepository {
	return &MockShoppingListRepository{
		Lists: make(map[string]*shoppinglist.List),
	}
}

func (m *MockShoppingListRepository) Create(ctx context.Context, list *shoppinglist.List) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	copied := *list
	m.Lists[list.ID] = &copied
	return nil
}

func (m *MockShoppingListRepository) GetByID(ctx context.Context, id string) (*shoppinglist.List, error) {
	list, ok := m.Lists[id]
	if !ok {
		return nil, fmt.Errorf("shopping list not found")
	}
	copied := *list
	return &copied, nil
}

func (m *MockShoppingListRepository) ListByUser(ctx context.Context, userID string) ([]*shoppinglist.List, error) {
	var out []*shoppinglist.List
	for _, list := range m.Lists {
		if list.UserID == userID {
			copied := *list
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *MockShoppingListRepository) Update(ctx context.Context, list *shoppinglist.List) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Lists[list.ID]; !ok {
		return fmt.Errorf("shopping list not found")
	}
	copied := *list
	m.Lists[list.ID] = &copied
	return nil
}

func (m *MockShoppingListRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Lists[id]; !ok {
		return fmt.Errorf("shopping list not found")
	}
	delete(m.Lists, id)
	return nil
}

// MockUserRepository is an in-memory user.Repository
type MockUserRepository struct {
	Users map[string]*user.User
	Prefs map[string]*user.Preferences
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*user.User),
		Prefs: make(map[string]*user.Preferences),
	}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	m.Users[u.ID] = u
	return nil
}

func (m *MockUserRepository) GetPreferences(ctx context.Context, userID string) (*user.Preferences, error) {
	return m.Prefs[userID], nil
}

func (m *MockUserRepository) PutPreferences(ctx context.Context, p *user.Preferences) error {
	m.Prefs[p.UserID] = p
	return nil
}
