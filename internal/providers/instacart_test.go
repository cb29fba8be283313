package providers

import (
	"context"
	"testing"

	"github.com/umamihq/umami-backend/internal/config"
	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func newTestInstacart() *InstacartAPI {
	return NewInstacartAPI(config.RetailerConfig{}, testutil.NewTestLogger())
}

func TestInstacartSearchItems_EmptyQuery(t *testing.T) {
	api := newTestInstacart()

	_, err := api.SearchItems(context.Background(), grocery.SearchParams{})
	if err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestInstacartSearchItems_MockFallback(t *testing.T) {
	api := newTestInstacart()

	result, err := api.SearchItems(context.Background(), grocery.SearchParams{Query: "chicken breast"})
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Items))
	}

	first := result.Items[0]
	if first.ID != "inst_1" || first.Name != "chicken breast" || first.Price != 8.99 {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Store.Name != "Whole Foods Market" {
		t.Errorf("first item store = %q, want Whole Foods Market", first.Store.Name)
	}
	if first.Unit != "lb" {
		t.Errorf("first item unit = %q, want lb", first.Unit)
	}
	if first.UnitPrice != 8.99 {
		t.Errorf("first item unit price = %v, want 8.99 for 1 lb", first.UnitPrice)
	}
	if first.Availability != grocery.AvailabilityInStock {
		t.Errorf("first item availability = %q, want in_stock", first.Availability)
	}

	second := result.Items[1]
	if second.ID != "inst_2" || second.Price != 6.99 {
		t.Errorf("unexpected second item: %+v", second)
	}
	if second.Store.DeliveryFee != 2.99 || second.Store.MinimumOrder != 25 {
		t.Errorf("second item store fees = %+v", second.Store)
	}
}

func TestInstacartSearchItems_Deterministic(t *testing.T) {
	api := newTestInstacart()
	ctx := context.Background()
	params := grocery.SearchParams{Query: "organic milk"}

	first, err := api.SearchItems(ctx, params)
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	second, err := api.SearchItems(ctx, params)
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}

	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].ID != second.Items[i].ID || first.Items[i].Price != second.Items[i].Price {
			t.Errorf("item %d differs between identical searches", i)
		}
	}
}

func TestInstacartGetStores_MockFallback(t *testing.T) {
	api := newTestInstacart()

	stores, err := api.GetStores(context.Background(), "94103")
	if err != nil {
		t.Fatalf("GetStores() error = %v", err)
	}

	if len(stores) != 2 {
		t.Fatalf("got %d stores, want 2", len(stores))
	}
	if stores[0].ID != "wf_001" || stores[0].DeliveryFee != 3.99 || stores[0].MinimumOrder != 35 {
		t.Errorf("unexpected first store: %+v", stores[0])
	}
	if stores[1].ID != "sf_001" {
		t.Errorf("unexpected second store: %+v", stores[1])
	}
}

func TestInstacartNormalizeItem_UnknownStore(t *testing.T) {
	api := newTestInstacart()

	item := api.normalizeItem(instacartItem{
		ID:           "inst_9",
		Name:         "Eggs",
		Price:        3.49,
		Size:         "12 each",
		Availability: false,
		StoreID:      "missing",
	}, map[string]grocery.Store{})

	if item.Store.Name != "Unknown Store" {
		t.Errorf("store name = %q, want Unknown Store", item.Store.Name)
	}
	if item.Availability != grocery.AvailabilityOutOfStock {
		t.Errorf("availability = %q, want out_of_stock", item.Availability)
	}
}
