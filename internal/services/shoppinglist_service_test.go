package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/domain/recipe"
	apperrors "github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/testutil"
)

// stubGrocery scripts CompareIngredientPrices per ingredient name
type stubGrocery struct {
	comparisons map[string]*grocery.PriceComparison
	compareErr  map[string]error
}

func (s *stubGrocery) SearchAllStores(ctx context.Context, params grocery.SearchParams) (*grocery.SearchResult, error) {
	return &grocery.SearchResult{}, nil
}

func (s *stubGrocery) SearchByStore(ctx context.Context, store string, params grocery.SearchParams) (*grocery.SearchResult, error) {
	return &grocery.SearchResult{}, nil
}

func (s *stubGrocery) CompareIngredientPrices(ctx context.Context, ingredient, location string) (*grocery.PriceComparison, error) {
	if err, ok := s.compareErr[ingredient]; ok {
		return nil, err
	}
	if c, ok := s.comparisons[ingredient]; ok {
		return c, nil
	}
	return nil, apperrors.NoItemsFound(ingredient)
}

func (s *stubGrocery) GetAvailableStores(ctx context.Context, location string) ([]grocery.Store, error) {
	return nil, nil
}

func comparisonFor(ingredient string, prices ...float64) *grocery.PriceComparison {
	items := make([]grocery.Item, len(prices))
	for i, p := range prices {
		items[i] = grocery.Item{ID: ingredient, Name: ingredient, Price: p}
	}
	return &grocery.PriceComparison{
		Ingredient: ingredient,
		Items:      items,
		BestPrice:  items[0],
	}
}

func newListService(g grocery.Service) (*ShoppingListService, *testutil.MockShoppingListRepository) {
	repo := testutil.NewMockShoppingListRepository()
	return NewShoppingListService(g, repo, testutil.NewTestLogger()), repo
}

func TestCreateFromIngredients(t *testing.T) {
	g := &stubGrocery{
		comparisons: map[string]*grocery.PriceComparison{
			"chicken": comparisonFor("chicken", 4.99, 6.99, 8.99, 9.99, 12.99),
			"basil":   comparisonFor("basil", 2.49),
		},
	}
	svc, repo := newListService(g)

	ingredients := []recipe.Ingredient{
		{Name: "chicken", Amount: 1, Unit: "lb"},
		{Name: "basil", Amount: 1, Unit: "bunch"},
	}

	list, err := svc.CreateFromIngredients(context.Background(), "u1", "", ingredients, "")
	if err != nil {
		t.Fatalf("CreateFromIngredients() error = %v", err)
	}

	if list.Name != "Recipe Shopping List" {
		t.Errorf("default name = %q", list.Name)
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}

	chicken := list.Items[0]
	if chicken.GroceryItem == nil || chicken.GroceryItem.Price != 4.99 {
		t.Errorf("chicken not resolved to best price: %+v", chicken.GroceryItem)
	}
	if len(chicken.Alternatives) != 3 {
		t.Errorf("got %d alternatives, want cap of 3", len(chicken.Alternatives))
	}

	basil := list.Items[1]
	if len(basil.Alternatives) != 0 {
		t.Errorf("single-item comparison should have no alternatives")
	}

	if math.Abs(list.TotalPrice-(4.99+2.49)) > 1e-9 {
		t.Errorf("total = %v, want %v", list.TotalPrice, 4.99+2.49)
	}

	if _, err := repo.GetByID(context.Background(), list.ID); err != nil {
		t.Errorf("list not persisted: %v", err)
	}
}

func TestCreateFromIngredients_UnresolvedLine(t *testing.T) {
	g := &stubGrocery{
		comparisons: map[string]*grocery.PriceComparison{
			"flour": comparisonFor("flour", 3.29),
		},
		compareErr: map[string]error{
			"saffron": errors.New("retailer timeout"),
		},
	}
	svc, _ := newListService(g)

	ingredients := []recipe.Ingredient{
		{Name: "saffron", Amount: 1, Unit: "g"},
		{Name: "flour", Amount: 2, Unit: "cup"},
	}

	list, err := svc.CreateFromIngredients(context.Background(), "u1", "Baking", ingredients, "")
	if err != nil {
		t.Fatalf("CreateFromIngredients() error = %v", err)
	}

	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}
	if list.Items[0].GroceryItem != nil {
		t.Error("failed comparison should leave the line unresolved")
	}
	if list.Items[0].Ingredient != "saffron" {
		t.Errorf("unresolved line = %q", list.Items[0].Ingredient)
	}
	// Only the resolved line counts toward the total
	if math.Abs(list.TotalPrice-3.29) > 1e-9 {
		t.Errorf("total = %v, want 3.29", list.TotalPrice)
	}
}

func TestCreateFromIngredients_Empty(t *testing.T) {
	svc, _ := newListService(&stubGrocery{})

	_, err := svc.CreateFromIngredients(context.Background(), "u1", "", nil, "")
	if err == nil {
		t.Fatal("expected error for empty ingredient list")
	}
}

func TestToggleItem(t *testing.T) {
	g := &stubGrocery{
		comparisons: map[string]*grocery.PriceComparison{
			"milk": comparisonFor("milk", 3.49),
		},
	}
	svc, _ := newListService(g)
	ctx := context.Background()

	list, err := svc.CreateFromIngredients(ctx, "u1", "", []recipe.Ingredient{{Name: "milk"}}, "")
	if err != nil {
		t.Fatalf("CreateFromIngredients() error = %v", err)
	}
	itemID := list.Items[0].ID

	updated, err := svc.ToggleItem(ctx, "u1", list.ID, itemID, true)
	if err != nil {
		t.Fatalf("ToggleItem() error = %v", err)
	}
	if !updated.Items[0].Completed {
		t.Error("item not marked completed")
	}

	if _, err := svc.ToggleItem(ctx, "u1", list.ID, "missing", true); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestOwnershipReadsAsNotFound(t *testing.T) {
	g := &stubGrocery{
		comparisons: map[string]*grocery.PriceComparison{
			"milk": comparisonFor("milk", 3.49),
		},
	}
	svc, _ := newListService(g)
	ctx := context.Background()

	list, err := svc.CreateFromIngredients(ctx, "owner", "", []recipe.Ingredient{{Name: "milk"}}, "")
	if err != nil {
		t.Fatalf("CreateFromIngredients() error = %v", err)
	}

	_, err = svc.Get(ctx, "intruder", list.ID)
	if err == nil {
		t.Fatal("expected error for another user's list")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != 404 {
		t.Errorf("error = %v, want a 404", err)
	}

	if err := svc.Delete(ctx, "intruder", list.ID); err == nil {
		t.Error("delete by another user should fail")
	}
	if _, err := svc.Get(ctx, "owner", list.ID); err != nil {
		t.Errorf("owner lost the list: %v", err)
	}
}

func TestRename(t *testing.T) {
	svc, _ := newListService(&stubGrocery{})
	ctx := context.Background()

	list, err := svc.CreateEmpty(ctx, "u1", "Weekly")
	if err != nil {
		t.Fatalf("CreateEmpty() error = %v", err)
	}

	renamed, err := svc.Rename(ctx, "u1", list.ID, "Weekend")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if renamed.Name != "Weekend" {
		t.Errorf("name = %q, want Weekend", renamed.Name)
	}

	if _, err := svc.Rename(ctx, "u1", list.ID, ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestCreateEmpty_RequiresName(t *testing.T) {
	svc, _ := newListService(&stubGrocery{})

	if _, err := svc.CreateEmpty(context.Background(), "u1", ""); err == nil {
		t.Fatal("expected error for empty name")
	}
}
