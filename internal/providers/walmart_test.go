package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func newTestWalmart() *WalmartAPI {
	return NewWalmartAPI(config.RetailerConfig{}, testutil.NewTestLogger())
}

func TestWalmartSearchItems_MockFallback(t *testing.T) {
	api := newTestWalmart()

	result, err := api.SearchItems(context.Background(), grocery.SearchParams{Query: "chicken breast"})
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Items))
	}

	value := result.Items[0]
	if value.ID != "wm_12345" || value.Name != "Great Value chicken breast" || value.Price != 4.99 {
		t.Errorf("unexpected value item: %+v", value)
	}
	if value.Brand != "Great Value" {
		t.Errorf("value item brand = %q", value.Brand)
	}
	if value.Availability != grocery.AvailabilityInStock {
		t.Errorf("value item availability = %q, want in_stock", value.Availability)
	}
	if value.Store.ID != "walmart" || value.Store.Type != grocery.StoreTypeWarehouse {
		t.Errorf("value item store = %+v", value.Store)
	}

	organic := result.Items[1]
	if organic.ID != "wm_12346" || organic.Name != "Organic chicken breast" || organic.Price != 9.99 {
		t.Errorf("unexpected organic item: %+v", organic)
	}
	if organic.Rating != 4.7 || organic.ReviewCount != 204 {
		t.Errorf("organic item rating = %v (%d reviews)", organic.Rating, organic.ReviewCount)
	}
}

func TestWalmartSearchItems_Suggestions(t *testing.T) {
	api := newTestWalmart()

	result, err := api.SearchItems(context.Background(), grocery.SearchParams{Query: "salmon"})
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}

	want := []string{"organic salmon", "fresh salmon", "frozen salmon"}
	if len(result.Suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(result.Suggestions), len(want))
	}
	for i, s := range want {
		if result.Suggestions[i] != s {
			t.Errorf("suggestion %d = %q, want %q", i, result.Suggestions[i], s)
		}
	}
}

func TestWalmartGetStores_Static(t *testing.T) {
	api := newTestWalmart()

	stores, err := api.GetStores(context.Background(), "anywhere")
	if err != nil {
		t.Fatalf("GetStores() error = %v", err)
	}

	if len(stores) != 1 {
		t.Fatalf("got %d stores, want 1", len(stores))
	}
	s := stores[0]
	if s.MinimumOrder != 35 || s.DeliveryFee != 9.95 || s.EstimatedDeliveryTime != "1-3 days" {
		t.Errorf("unexpected static store: %+v", s)
	}
}

func TestCategoryID(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"chicken breast", "976759"},
		{"ground beef", "976760"},
		{"fresh vegetables", "976781"},
		{"sourdough bread", "976784"},
		{"mystery item", "976759"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := categoryID(tt.query); got != tt.want {
				t.Errorf("categoryID(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMapSort(t *testing.T) {
	if got := mapSort(grocery.SortByPrice); got != "price_low" {
		t.Errorf("mapSort(price) = %q", got)
	}
	if got := mapSort(grocery.SortByRating); got != "best_match" {
		t.Errorf("mapSort(rating) = %q", got)
	}
	if got := mapSort(""); got != "relevance" {
		t.Errorf("mapSort(default) = %q", got)
	}
}

func TestNormalizeWalmartItem(t *testing.T) {
	item := normalizeWalmartItem(walmartItem{
		ItemID:    "wm_1",
		Name:      "Frozen Peas",
		SalePrice: 2.49,
		Stock:     "Limited",
	})

	if item.Availability != grocery.AvailabilityLimited {
		t.Errorf("availability = %q, want limited", item.Availability)
	}
	if item.Size != "Standard" {
		t.Errorf("size = %q, want Standard default", item.Size)
	}
	if !strings.EqualFold(item.Currency, "USD") {
		t.Errorf("currency = %q", item.Currency)
	}
}
