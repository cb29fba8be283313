package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	apperrors "github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/providers"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func item(id, name, brand, size string, price float64) grocery.Item {
	return grocery.Item{
		ID:           id,
		Name:         name,
		Brand:        brand,
		Size:         size,
		Price:        price,
		Currency:     "USD",
		Availability: grocery.AvailabilityInStock,
	}
}

func newGroceryService(adapters ...providers.RetailerAPI) *GroceryService {
	return NewGroceryService(providers.NewRegistry(adapters...), testutil.NewTestLogger())
}

func TestSearchAllStores_MergesAdapters(t *testing.T) {
	a := &testutil.MockRetailerAPI{
		KeyName: "alpha",
		Items:   []grocery.Item{item("a1", "Chicken", "FarmCo", "1 lb", 8.99)},
	}
	b := &testutil.MockRetailerAPI{
		KeyName: "beta",
		Items:   []grocery.Item{item("b1", "Chicken", "ValueCo", "1 lb", 4.99)},
	}

	svc := newGroceryService(a, b)
	result, err := svc.SearchAllStores(context.Background(), grocery.SearchParams{Query: "chicken"})
	if err != nil {
		t.Fatalf("SearchAllStores() error = %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Items))
	}
	if result.TotalResults != 2 {
		t.Errorf("total results = %d, want 2", result.TotalResults)
	}
	if a.SearchCalls != 1 || b.SearchCalls != 1 {
		t.Errorf("adapter calls = %d, %d; want 1 each", a.SearchCalls, b.SearchCalls)
	}
}

func TestSearchAllStores_EmptyQuery(t *testing.T) {
	svc := newGroceryService(&testutil.MockRetailerAPI{KeyName: "alpha"})

	_, err := svc.SearchAllStores(context.Background(), grocery.SearchParams{})
	if err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearchAllStores_ToleratesAdapterFailure(t *testing.T) {
	failing := &testutil.MockRetailerAPI{
		KeyName:   "down",
		SearchErr: errors.New("connection refused"),
	}
	working := &testutil.MockRetailerAPI{
		KeyName: "up",
		Items:   []grocery.Item{item("u1", "Milk", "DairyCo", "1 gal", 3.49)},
	}

	svc := newGroceryService(failing, working)
	result, err := svc.SearchAllStores(context.Background(), grocery.SearchParams{Query: "milk"})
	if err != nil {
		t.Fatalf("SearchAllStores() error = %v", err)
	}

	if len(result.Items) != 1 || result.Items[0].ID != "u1" {
		t.Errorf("expected only the working adapter's item, got %+v", result.Items)
	}
}

func TestSearchAllStores_Suggestions(t *testing.T) {
	svc := newGroceryService(&testutil.MockRetailerAPI{KeyName: "alpha"})

	result, err := svc.SearchAllStores(context.Background(), grocery.SearchParams{Query: "basil"})
	if err != nil {
		t.Fatalf("SearchAllStores() error = %v", err)
	}

	want := []string{"organic basil", "fresh basil", "basil substitute"}
	if len(result.Suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(result.Suggestions))
	}
	for i, s := range want {
		if result.Suggestions[i] != s {
			t.Errorf("suggestion %d = %q, want %q", i, result.Suggestions[i], s)
		}
	}
}

func TestSearchByStore_UnknownKey(t *testing.T) {
	svc := newGroceryService(&testutil.MockRetailerAPI{KeyName: "alpha"})

	_, err := svc.SearchByStore(context.Background(), "nope", grocery.SearchParams{Query: "milk"})
	if err == nil {
		t.Fatal("expected error for unknown store key")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeUnsupportedStore {
		t.Errorf("error code = %v, want %s", err, apperrors.ErrCodeUnsupportedStore)
	}
}

func TestDedupeItems(t *testing.T) {
	items := []grocery.Item{
		item("1", "Chicken Breast", "FarmCo", "1 lb", 8.99),
		item("2", "chicken breast", "farmco", "1 lb", 6.99), // same key, cheaper
		item("3", "Chicken Breast", "FarmCo", "2 lb", 12.99),
		item("4", "Chicken Breast", "OtherCo", "1 lb", 7.99),
	}

	out := dedupeItems(items)
	if len(out) != 3 {
		t.Fatalf("got %d items, want 3", len(out))
	}

	// The duplicate slot keeps first-seen position with the cheaper price
	if out[0].ID != "2" || out[0].Price != 6.99 {
		t.Errorf("dedupe kept %+v, want the cheaper duplicate", out[0])
	}
	if out[1].ID != "3" || out[2].ID != "4" {
		t.Errorf("dedupe disturbed order: %v, %v", out[1].ID, out[2].ID)
	}
}

func TestSortItems(t *testing.T) {
	build := func() []grocery.Item {
		a := item("a", "A", "", "1 lb", 5.99)
		a.Rating = 4.0
		a.Availability = grocery.AvailabilityOutOfStock
		b := item("b", "B", "", "1 lb", 2.99)
		b.Rating = 4.8
		b.Availability = grocery.AvailabilityLimited
		c := item("c", "C", "", "1 lb", 3.99)
		c.Rating = 4.8
		c.Availability = grocery.AvailabilityInStock
		return []grocery.Item{a, b, c}
	}

	t.Run("by price ascending", func(t *testing.T) {
		items := build()
		sortItems(items, grocery.SortByPrice)
		if items[0].ID != "b" || items[1].ID != "c" || items[2].ID != "a" {
			t.Errorf("price order = %v", ids(items))
		}
	})

	t.Run("by rating descending, stable on ties", func(t *testing.T) {
		items := build()
		sortItems(items, grocery.SortByRating)
		// b and c tie at 4.8; b came first in input
		if items[0].ID != "b" || items[1].ID != "c" || items[2].ID != "a" {
			t.Errorf("rating order = %v", ids(items))
		}
	})

	t.Run("by availability", func(t *testing.T) {
		items := build()
		sortItems(items, grocery.SortByAvailability)
		if items[0].ID != "c" || items[1].ID != "b" || items[2].ID != "a" {
			t.Errorf("availability order = %v", ids(items))
		}
	})
}

func ids(items []grocery.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestCompareIngredientPrices(t *testing.T) {
	a := &testutil.MockRetailerAPI{
		KeyName: "alpha",
		Items: []grocery.Item{
			item("a1", "Chicken", "FarmCo", "1 lb", 8.99),
			item("a2", "Chicken", "PremiumCo", "1 lb", 12.49),
		},
	}
	b := &testutil.MockRetailerAPI{
		KeyName: "beta",
		Items:   []grocery.Item{item("b1", "Chicken", "ValueCo", "1 lb", 4.99)},
	}

	svc := newGroceryService(a, b)
	comparison, err := svc.CompareIngredientPrices(context.Background(), "chicken", "")
	if err != nil {
		t.Fatalf("CompareIngredientPrices() error = %v", err)
	}

	if comparison.BestPrice.Price != comparison.PriceRange.Min {
		t.Errorf("best price %v != min %v", comparison.BestPrice.Price, comparison.PriceRange.Min)
	}
	if comparison.BestPrice.ID != "b1" {
		t.Errorf("best price item = %s, want b1", comparison.BestPrice.ID)
	}
	if comparison.PriceRange.Min != 4.99 || comparison.PriceRange.Max != 12.49 {
		t.Errorf("price range = %+v", comparison.PriceRange)
	}
	if math.Abs(comparison.Savings-7.50) > 1e-9 {
		t.Errorf("savings = %v, want 7.50", comparison.Savings)
	}
	wantAvg := (4.99 + 8.99 + 12.49) / 3
	if math.Abs(comparison.AveragePrice-wantAvg) > 1e-9 {
		t.Errorf("average = %v, want %v", comparison.AveragePrice, wantAvg)
	}

	// Items arrive price-sorted
	for i := 1; i < len(comparison.Items); i++ {
		if comparison.Items[i].Price < comparison.Items[i-1].Price {
			t.Errorf("items not price-sorted at %d", i)
		}
	}
}

func TestCompareIngredientPrices_NoItems(t *testing.T) {
	svc := newGroceryService(&testutil.MockRetailerAPI{KeyName: "alpha"})

	_, err := svc.CompareIngredientPrices(context.Background(), "unicorn meat", "")
	if err == nil {
		t.Fatal("expected error when no items found")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeNoItemsFound {
		t.Errorf("error = %v, want %s", err, apperrors.ErrCodeNoItemsFound)
	}
}

func TestGetAvailableStores_DedupesAndTolerates(t *testing.T) {
	shared := grocery.Store{ID: "s1", Name: "Shared"}
	a := &testutil.MockRetailerAPI{
		KeyName: "alpha",
		Stores:  []grocery.Store{shared, {ID: "s2", Name: "Alpha Only"}},
	}
	b := &testutil.MockRetailerAPI{
		KeyName: "beta",
		Stores:  []grocery.Store{shared},
	}
	failing := &testutil.MockRetailerAPI{
		KeyName:   "down",
		StoresErr: errors.New("timeout"),
	}

	svc := newGroceryService(a, b, failing)
	stores, err := svc.GetAvailableStores(context.Background(), "94103")
	if err != nil {
		t.Fatalf("GetAvailableStores() error = %v", err)
	}

	if len(stores) != 2 {
		t.Fatalf("got %d stores, want 2", len(stores))
	}
}
