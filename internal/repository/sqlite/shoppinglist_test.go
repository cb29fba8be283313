package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/umamihq/umami-backend/internal/domain/grocery"
	"github.com/umamihq/umami-backend/internal/domain/shoppinglist"
	apperrors "github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func sampleList(id, userID string, createdAt time.Time) *shoppinglist.List {
	return &shoppinglist.List{
		ID:     id,
		UserID: userID,
		Name:   "Weekly Groceries",
		Items: []shoppinglist.Item{
			{
				ID:         "i1",
				Ingredient: "chicken breast",
				Amount:     1,
				Unit:       "lb",
				GroceryItem: &grocery.Item{
					ID:    "wm_12345",
					Name:  "Great Value chicken breast",
					Price: 4.99,
				},
			},
			{
				ID:         "i2",
				Ingredient: "saffron",
				Amount:     1,
				Unit:       "g",
			},
		},
		TotalPrice: 4.99,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestShoppingListRepository_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	in := sampleList("l1", "u1", time.Now().UTC())
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "l1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Weekly Groceries" || got.TotalPrice != 4.99 {
		t.Errorf("got %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Items))
	}
	resolved := got.Items[0]
	if resolved.GroceryItem == nil || resolved.GroceryItem.Price != 4.99 {
		t.Errorf("resolved line lost its grocery item: %+v", resolved)
	}
	if got.Items[1].GroceryItem != nil {
		t.Error("unresolved line grew a grocery item")
	}
}

func TestShoppingListRepository_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"l1", "l2", "l3"} {
		list := sampleList(id, "u1", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(ctx, list); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}
	other := sampleList("other", "u2", base)
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create(other) error = %v", err)
	}

	lists, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("got %d lists, want 3", len(lists))
	}
	// Newest first
	if lists[0].ID != "l3" || lists[1].ID != "l2" || lists[2].ID != "l1" {
		t.Errorf("order = %s, %s, %s", lists[0].ID, lists[1].ID, lists[2].ID)
	}
}

func TestShoppingListRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	list := sampleList("l1", "u1", time.Now().UTC())
	if err := repo.Create(ctx, list); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list.Name = "Weekend Groceries"
	list.Items[0].Completed = true
	list.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, list); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "l1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Weekend Groceries" || !got.Items[0].Completed {
		t.Errorf("update not applied: %+v", got)
	}

	missing := sampleList("missing", "u1", time.Now().UTC())
	err = repo.Update(ctx, missing)
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != 404 {
		t.Errorf("update of missing list = %v, want a 404", err)
	}
}

func TestShoppingListRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewShoppingListRepository(db)
	ctx := context.Background()

	list := sampleList("l1", "u1", time.Now().UTC())
	if err := repo.Create(ctx, list); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, "l1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, "l1"); err == nil {
		t.Error("list still readable after delete")
	}

	err := repo.Delete(ctx, "l1")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != 404 {
		t.Errorf("second delete = %v, want a 404", err)
	}
}
