package services

import (
	"context"
	"testing"

	"github.com/umamihq/umami-backend/internal/domain/user"
	"github.com/umamihq/umami-backend/internal/testutil"
)

func TestUpdatePreferences(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, testutil.NewTestLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		prefs   user.Preferences
		wantErr bool
	}{
		{
			name: "valid",
			prefs: user.Preferences{
				UserID:              "u1",
				Cuisines:            []string{"italian"},
				DietaryRestrictions: []string{"vegan", "gluten-free"},
				SkillLevel:          user.SkillBeginner,
				CookingTime:         user.CookingTimeQuick,
			},
		},
		{
			name:  "empty enums allowed",
			prefs: user.Preferences{UserID: "u1"},
		},
		{
			name:    "missing user id",
			prefs:   user.Preferences{SkillLevel: user.SkillBeginner},
			wantErr: true,
		},
		{
			name:    "unknown skill level",
			prefs:   user.Preferences{UserID: "u1", SkillLevel: "wizard"},
			wantErr: true,
		},
		{
			name:    "unknown cooking time",
			prefs:   user.Preferences{UserID: "u1", CookingTime: "instant"},
			wantErr: true,
		},
		{
			name:    "unknown dietary restriction",
			prefs:   user.Preferences{UserID: "u1", DietaryRestrictions: []string{"carnivore"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := tt.prefs
			err := svc.UpdatePreferences(ctx, &prefs)
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdatePreferences() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && prefs.UpdatedAt.IsZero() {
				t.Error("UpdatedAt not stamped")
			}
		})
	}
}

func TestGetPreferences_NilWhenAbsent(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, testutil.NewTestLogger())

	prefs, err := svc.GetPreferences(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if prefs != nil {
		t.Errorf("expected nil preferences for a user who never saved any, got %+v", prefs)
	}
}

func TestGetPreferences_RoundTrip(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, testutil.NewTestLogger())
	ctx := context.Background()

	in := user.Preferences{
		UserID:      "u1",
		Cuisines:    []string{"thai"},
		SkillLevel:  user.SkillAdvanced,
		CookingTime: user.CookingTimeLong,
	}
	if err := svc.UpdatePreferences(ctx, &in); err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	out, err := svc.GetPreferences(ctx, "u1")
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if out == nil || out.SkillLevel != user.SkillAdvanced || len(out.Cuisines) != 1 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
