package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/umamihq/umami-backend/internal/domain/user"
	apperrors "github.com/umamihq/umami-backend/internal/pkg/errors"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func TestUserRepository_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{
		ID:          "u1",
		Email:       "cook@example.com",
		DisplayName: "Cook",
	}
	if err := repo.Upsert(ctx, u); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != "cook@example.com" || got.DisplayName != "Cook" {
		t.Errorf("got %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not persisted")
	}

	// Upsert again with changed fields replaces the row
	u.DisplayName = "Chef"
	u.Avatar = "https://example.com/a.png"
	if err := repo.Upsert(ctx, u); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, err = repo.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByID() after update error = %v", err)
	}
	if got.DisplayName != "Chef" || got.Avatar != "https://example.com/a.png" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error for missing user")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != 404 {
		t.Errorf("error = %v, want a 404", err)
	}
}

func TestUserRepository_Preferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	// Never saved: nil, nil
	prefs, err := repo.GetPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if prefs != nil {
		t.Fatalf("expected nil preferences, got %+v", prefs)
	}

	in := &user.Preferences{
		UserID:              "u1",
		Cuisines:            []string{"italian", "thai"},
		DietaryRestrictions: []string{"vegetarian"},
		SkillLevel:          user.SkillIntermediate,
		CookingTime:         user.CookingTimeQuick,
	}
	if err := repo.PutPreferences(ctx, in); err != nil {
		t.Fatalf("PutPreferences() error = %v", err)
	}

	out, err := repo.GetPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPreferences() after put error = %v", err)
	}
	if out == nil {
		t.Fatal("preferences missing after put")
	}
	if out.UserID != "u1" || out.SkillLevel != user.SkillIntermediate || out.CookingTime != user.CookingTimeQuick {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if len(out.Cuisines) != 2 || out.Cuisines[0] != "italian" {
		t.Errorf("cuisines = %v", out.Cuisines)
	}

	// Replace wins
	in.Cuisines = []string{"mexican"}
	if err := repo.PutPreferences(ctx, in); err != nil {
		t.Fatalf("replace PutPreferences() error = %v", err)
	}
	out, err = repo.GetPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPreferences() after replace error = %v", err)
	}
	if len(out.Cuisines) != 1 || out.Cuisines[0] != "mexican" {
		t.Errorf("replace not applied: %v", out.Cuisines)
	}
}
